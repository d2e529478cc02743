package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/pkg/metrics"
)

type TaskRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTaskRepository(db *pgxpool.Pool, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{db: db, logger: logger}
}

const taskColumns = `
    t.id, t.project_id, t.title, COALESCE(t.description, ''), t.month,
    t.category, t.part, t.assignee_id, COALESCE(t.assignee_name, ''),
    t.status, COALESCE(t.priority, ''), t.start_date, t.end_date,
    t.pm_confirmed, t.pm_confirmed_date, t.completed_at,
    t.created_at, t.updated_at
`

const dateLayout = "2006-01-02"

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func scanTask(row interface{ Scan(...any) error }, extra ...any) (*model.Task, error) {
	var t model.Task
	var startDate, endDate, pmConfirmedDate *time.Time

	dest := []any{
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Month,
		&t.Category, &t.Part, &t.AssigneeID, &t.AssigneeName,
		&t.Status, &t.Priority, &startDate, &endDate,
		&t.PMConfirmed, &pmConfirmedDate, &t.CompletedAt,
		&t.CreatedAt, &t.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	t.StartDate = fmtDate(startDate)
	t.EndDate = fmtDate(endDate)
	t.PMConfirmedDate = fmtDate(pmConfirmedDate)
	return &t, nil
}

// TaskFilter narrows task listings. Zero-valued fields are skipped when
// assembling the WHERE clause.
type TaskFilter struct {
	ProjectID *int
	Status    string
	Part      string
	Month     string
}

// List returns tasks matching the filter, joined with their project's
// name, PM, and month range, newest first.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	start := time.Now()

	query := `
        SELECT ` + taskColumns + `,
            COALESCE(p.name, ''), COALESCE(p.pm_name, ''),
            COALESCE(p.start_month, ''), COALESCE(p.end_month, '')
        FROM tasks t
        LEFT JOIN projects p ON t.project_id = p.id
    `
	conds := []string{}
	args := []any{}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conds = append(conds, fmt.Sprintf("t.project_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.Part != "" {
		args = append(args, filter.Part)
		conds = append(conds, fmt.Sprintf("t.part = $%d", len(args)))
	}
	if filter.Month != "" {
		args = append(args, filter.Month)
		conds = append(conds, fmt.Sprintf("t.month = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var projectName, pmName, startMonth, endMonth string
		t, err := scanTask(rows, &projectName, &pmName, &startMonth, &endMonth)
		if err != nil {
			return nil, err
		}
		t.ProjectName = projectName
		t.PMName = pmName
		t.StartMonth = startMonth
		t.EndMonth = endMonth
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics.RecordDBQueryDuration("list", "tasks", time.Since(start))
	return tasks, nil
}

// Create inserts a new task and returns the stored row.
func (r *TaskRepository) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	query := `
        INSERT INTO tasks AS t (
            project_id, title, description, month, category, part,
            assignee_id, assignee_name, status, priority, start_date, end_date
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
            NULLIF($11, '')::date, NULLIF($12, '')::date)
        RETURNING ` + taskColumns + `
    `
	created, err := scanTask(r.db.QueryRow(ctx, query,
		t.ProjectID, t.Title, t.Description, t.Month, t.Category, t.Part,
		t.AssigneeID, t.AssigneeName, t.Status, t.Priority, t.StartDate, t.EndDate,
	))
	if err != nil {
		r.logger.Error("Failed to insert task",
			zap.Int("project_id", t.ProjectID),
			zap.String("title", t.Title),
			zap.Error(err),
		)
		return nil, err
	}

	r.logger.Info("Task created",
		zap.Int("task_id", created.ID),
		zap.Int("project_id", created.ProjectID),
	)
	return created, nil
}

// UpdateStatus sets a task's status and stores the completion stamp the
// caller decided on (see Task.CompletionStampAt).
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int, status model.TaskStatus, completedAt *time.Time) (*model.Task, error) {
	query := `
        UPDATE tasks t
        SET status = $1,
            completed_at = $2,
            updated_at = NOW()
        WHERE id = $3
        RETURNING ` + taskColumns + `
    `
	updated, err := scanTask(r.db.QueryRow(ctx, query, status, completedAt, id))
	if err != nil {
		return nil, err
	}

	r.logger.Info("Task status updated",
		zap.Int("task_id", id),
		zap.String("status", string(status)),
	)
	return updated, nil
}

// ConfirmPM marks a task PM-confirmed on the date the caller decided on
// (see Task.ConfirmationDateAt).
func (r *TaskRepository) ConfirmPM(ctx context.Context, id int, confirmedOn string) (*model.Task, error) {
	query := `
        UPDATE tasks t
        SET pm_confirmed = TRUE,
            pm_confirmed_date = $2::date,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + taskColumns + `
    `
	return scanTask(r.db.QueryRow(ctx, query, id, confirmedOn))
}

// GetByID returns one task without joins.
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	return scanTask(r.db.QueryRow(ctx, query, id))
}

// ListByProjects returns every task of the given projects with assignee
// name/position and project name joined in, optionally restricted to one
// assignee. Report assembly classifies the result in memory.
func (r *TaskRepository) ListByProjects(ctx context.Context, projectIDs []int, assigneeID *int) ([]model.Task, error) {
	start := time.Now()

	query := `
        SELECT ` + taskColumns + `,
            COALESCE(u.name, ''), COALESCE(u.position, ''), COALESCE(p.name, '')
        FROM tasks t
        LEFT JOIN users u ON t.assignee_id = u.id
        LEFT JOIN projects p ON t.project_id = p.id
        WHERE t.project_id = ANY($1)
    `
	args := []any{projectIDs}
	if assigneeID != nil {
		query += ` AND t.assignee_id = $2`
		args = append(args, *assigneeID)
	}
	query += ` ORDER BY p.name ASC, t.updated_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query project tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var assigneeName, assigneePosition, projectName string
		t, err := scanTask(rows, &assigneeName, &assigneePosition, &projectName)
		if err != nil {
			return nil, err
		}
		if assigneeName != "" {
			t.AssigneeName = assigneeName
		}
		t.AssigneePosition = assigneePosition
		t.ProjectName = projectName
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics.RecordDBQueryDuration("list_by_projects", "tasks", time.Since(start))
	return tasks, nil
}

// ListByAssignee returns all tasks assigned to one user across every
// project, earliest start date first.
func (r *TaskRepository) ListByAssignee(ctx context.Context, userID int) ([]model.Task, error) {
	query := `
        SELECT ` + taskColumns + `,
            COALESCE(p.name, ''), COALESCE(p.pm_name, ''),
            COALESCE(p.start_month, ''), COALESCE(p.end_month, '')
        FROM tasks t
        JOIN projects p ON t.project_id = p.id
        WHERE t.assignee_id = $1
        ORDER BY t.start_date ASC NULLS LAST
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to query assignee tasks", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var projectName, pmName, startMonth, endMonth string
		t, err := scanTask(rows, &projectName, &pmName, &startMonth, &endMonth)
		if err != nil {
			return nil, err
		}
		t.ProjectName = projectName
		t.PMName = pmName
		t.StartMonth = startMonth
		t.EndMonth = endMonth
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// ListInWindow returns tasks whose [start_date, end_date] range overlaps
// [first, last], optionally restricted to one assignee. Used by the
// calendar view.
func (r *TaskRepository) ListInWindow(ctx context.Context, first, last string, assigneeID *int) ([]model.Task, error) {
	query := `
        SELECT ` + taskColumns + `,
            COALESCE(p.name, '')
        FROM tasks t
        LEFT JOIN projects p ON t.project_id = p.id
        WHERE t.start_date <= $2 AND t.end_date >= $1
    `
	args := []any{first, last}
	if assigneeID != nil {
		query += ` AND t.assignee_id = $3`
		args = append(args, *assigneeID)
	}
	query += ` ORDER BY t.start_date ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query calendar tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var projectName string
		t, err := scanTask(rows, &projectName)
		if err != nil {
			return nil, err
		}
		t.ProjectName = projectName
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// CountBy returns counts of tasks grouped by the given column (status,
// part, or month), optionally scoped to one project.
func (r *TaskRepository) CountBy(ctx context.Context, column string, projectID *int) (map[string]int, error) {
	// column is one of a fixed set chosen by the stats handler, never
	// user input.
	query := `SELECT ` + column + `, COUNT(*) FROM tasks`
	args := []any{}
	if projectID != nil {
		query += ` WHERE project_id = $1`
		args = append(args, *projectID)
	}
	query += ` GROUP BY ` + column

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query task counts", zap.String("column", column), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

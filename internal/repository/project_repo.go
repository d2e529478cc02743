package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/pkg/metrics"
)

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

// projectWithStatsQuery joins per-project task counts. The counts are
// derived at read time and never stored.
const projectWithStatsQuery = `
    SELECT
        p.id, p.name, COALESCE(p.description, ''),
        p.start_month, p.end_month, p.pm_id, p.pm_name,
        COALESCE(p.frontend, '{}'), COALESCE(p.backend, '{}'),
        COALESCE(p.designer, '{}'), COALESCE(p.ux, '{}'),
        COALESCE(p.app, '{}'), COALESCE(p.ai, '{}'),
        p.created_at, p.updated_at,
        COALESCE(ts.total_tasks, 0),
        COALESCE(ts.waiting_tasks, 0),
        COALESCE(ts.in_progress_tasks, 0),
        COALESCE(ts.completed_tasks, 0),
        COALESCE(ts.on_hold_tasks, 0)
    FROM projects p
    LEFT JOIN (
        SELECT
            project_id,
            COUNT(*) AS total_tasks,
            COUNT(*) FILTER (WHERE status = 'waiting') AS waiting_tasks,
            COUNT(*) FILTER (WHERE status = 'in-progress') AS in_progress_tasks,
            COUNT(*) FILTER (WHERE status = 'done') AS completed_tasks,
            COUNT(*) FILTER (WHERE status = 'on-hold') AS on_hold_tasks
        FROM tasks
        GROUP BY project_id
    ) ts ON p.id = ts.project_id
`

func scanProjectWithStats(row interface{ Scan(...any) error }) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description,
		&p.StartMonth, &p.EndMonth, &p.PMID, &p.PMName,
		&p.FrontendMembers, &p.BackendMembers,
		&p.DesignerMembers, &p.UXMembers,
		&p.AppMembers, &p.AIMembers,
		&p.CreatedAt, &p.UpdatedAt,
		&p.TaskCount,
		&p.WaitingTasks,
		&p.InProgressTasks,
		&p.CompletedTasks,
		&p.OnHoldTasks,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects with aggregated task counts, newest first.
// Lifecycle and participation filtering happen in the handler via
// model.FilterProjects.
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	start := time.Now()

	query := projectWithStatsQuery + ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProjectWithStats(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics.RecordDBQueryDuration("list", "projects", time.Since(start))
	return projects, nil
}

// Get returns one project with aggregated task counts.
func (r *ProjectRepository) Get(ctx context.Context, id int) (*model.Project, error) {
	query := projectWithStatsQuery + ` WHERE p.id = $1`
	p, err := scanProjectWithStats(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project with its six role member arrays.
func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	query := `
        INSERT INTO projects (
            name, description, start_month, end_month, pm_id, pm_name,
            frontend, backend, designer, ux, app, ai
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.StartMonth, p.EndMonth, p.PMID, p.PMName,
		p.FrontendMembers, p.BackendMembers, p.DesignerMembers,
		p.UXMembers, p.AppMembers, p.AIMembers,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert project", zap.String("name", p.Name), zap.Error(err))
		return err
	}

	r.logger.Info("Project created",
		zap.Int("project_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("pm_id", p.PMID),
	)
	return nil
}

// ProjectMeta is the slim shape used when assembling reports.
type ProjectMeta struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListMeta returns name/description for a set of project ids.
func (r *ProjectRepository) ListMeta(ctx context.Context, ids []int) ([]ProjectMeta, error) {
	query := `
        SELECT id, name, COALESCE(description, '')
        FROM projects
        WHERE id = ANY($1)
        ORDER BY name ASC
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error("Failed to query project meta", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	metas := []ProjectMeta{}
	for rows.Next() {
		var m ProjectMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskhub/internal/model"
)

// WorkRequestRepository serves the legacy request tracker, which lives
// beside the project/task model but shares nothing with it.
type WorkRequestRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewWorkRequestRepository(db *pgxpool.Pool, logger *zap.Logger) *WorkRequestRepository {
	return &WorkRequestRepository{db: db, logger: logger}
}

const workRequestColumns = `
    id, number, COALESCE(division, ''), company, request_date,
    material_date, COALESCE(manager_md, ''), requester, task_name,
    COALESCE(content, ''), COALESCE(work_notes, ''), COALESCE(requester_url, ''),
    COALESCE(memo, ''), status, design_start_date, design_end_date,
    COALESCE(designer, ''), review_done, effort, created_at, updated_at
`

func scanWorkRequest(row interface{ Scan(...any) error }) (*model.WorkRequest, error) {
	var w model.WorkRequest
	var requestDate, materialDate, designStart, designEnd *time.Time

	err := row.Scan(
		&w.ID, &w.Number, &w.Division, &w.Company, &requestDate,
		&materialDate, &w.ManagerMD, &w.Requester, &w.TaskName,
		&w.Content, &w.WorkNotes, &w.RequesterURL,
		&w.Memo, &w.Status, &designStart, &designEnd,
		&w.Designer, &w.ReviewDone, &w.Effort, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.RequestDate = fmtDate(requestDate)
	w.MaterialDate = fmtDate(materialDate)
	w.DesignStartDate = fmtDate(designStart)
	w.DesignEndDate = fmtDate(designEnd)
	return &w, nil
}

// WorkRequestFilter narrows work request listings; zero-valued fields are
// skipped.
type WorkRequestFilter struct {
	Company          string
	Designer         string
	Status           string
	RequestDateFrom  string
	RequestDateUntil string
}

func (r *WorkRequestRepository) List(ctx context.Context, filter WorkRequestFilter) ([]model.WorkRequest, error) {
	query := `SELECT ` + workRequestColumns + ` FROM work_requests`

	conds := []string{}
	args := []any{}
	if filter.Company != "" {
		args = append(args, filter.Company)
		conds = append(conds, fmt.Sprintf("company = $%d", len(args)))
	}
	if filter.Designer != "" {
		args = append(args, filter.Designer)
		conds = append(conds, fmt.Sprintf("designer = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.RequestDateFrom != "" {
		args = append(args, filter.RequestDateFrom)
		conds = append(conds, fmt.Sprintf("request_date >= $%d", len(args)))
	}
	if filter.RequestDateUntil != "" {
		args = append(args, filter.RequestDateUntil)
		conds = append(conds, fmt.Sprintf("request_date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY request_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query work requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := []model.WorkRequest{}
	for rows.Next() {
		w, err := scanWorkRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *w)
	}
	return requests, rows.Err()
}

func (r *WorkRequestRepository) Get(ctx context.Context, id int) (*model.WorkRequest, error) {
	query := `SELECT ` + workRequestColumns + ` FROM work_requests WHERE id = $1`
	return scanWorkRequest(r.db.QueryRow(ctx, query, id))
}

func (r *WorkRequestRepository) Create(ctx context.Context, w *model.WorkRequest) (*model.WorkRequest, error) {
	query := `
        INSERT INTO work_requests (
            number, division, company, request_date, material_date,
            manager_md, requester, task_name, content, work_notes,
            requester_url, memo, status, design_start_date, design_end_date,
            designer, review_done, effort
        ) VALUES ($1, $2, $3, $4, NULLIF($5, '')::date, $6, $7, $8, $9, $10,
            $11, $12, $13, NULLIF($14, '')::date, NULLIF($15, '')::date,
            $16, $17, $18)
        RETURNING ` + workRequestColumns + `
    `
	created, err := scanWorkRequest(r.db.QueryRow(ctx, query,
		w.Number, w.Division, w.Company, w.RequestDate, w.MaterialDate,
		w.ManagerMD, w.Requester, w.TaskName, w.Content, w.WorkNotes,
		w.RequesterURL, w.Memo, w.Status, w.DesignStartDate, w.DesignEndDate,
		w.Designer, w.ReviewDone, w.Effort,
	))
	if err != nil {
		r.logger.Error("Failed to insert work request", zap.String("number", w.Number), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *WorkRequestRepository) Update(ctx context.Context, id int, w *model.WorkRequest) (*model.WorkRequest, error) {
	query := `
        UPDATE work_requests SET
            division = $1, company = $2, request_date = $3,
            material_date = NULLIF($4, '')::date, manager_md = $5,
            requester = $6, task_name = $7, content = $8, work_notes = $9,
            requester_url = $10, memo = $11, status = $12,
            design_start_date = NULLIF($13, '')::date,
            design_end_date = NULLIF($14, '')::date,
            designer = $15, review_done = $16, effort = $17,
            updated_at = NOW()
        WHERE id = $18
        RETURNING ` + workRequestColumns + `
    `
	return scanWorkRequest(r.db.QueryRow(ctx, query,
		w.Division, w.Company, w.RequestDate, w.MaterialDate, w.ManagerMD,
		w.Requester, w.TaskName, w.Content, w.WorkNotes,
		w.RequesterURL, w.Memo, w.Status, w.DesignStartDate, w.DesignEndDate,
		w.Designer, w.ReviewDone, w.Effort, id,
	))
}

// Delete removes a work request and reports whether a row existed.
func (r *WorkRequestRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_requests WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete work request", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

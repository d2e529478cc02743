package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskhub/internal/model"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (email, password, name, position)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, u.Email, u.PasswordHash, u.Name, u.Position).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to insert user", zap.String("email", u.Email), zap.Error(err))
		return err
	}
	return nil
}

// FindByEmail returns a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
        SELECT id, email, password, name, COALESCE(position, ''), created_at, updated_at
        FROM users
        WHERE email = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Position, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
        SELECT id, email, password, name, COALESCE(position, ''), created_at, updated_at
        FROM users
        WHERE id = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Position, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Search matches users by name or email substring, optionally filtered by
// position, capped at 10 rows. Callers short-circuit queries under two
// characters before reaching the repository.
func (r *UserRepository) Search(ctx context.Context, term, part string) ([]model.UserSearchResult, error) {
	query := `
        SELECT id, name, email, COALESCE(position, '')
        FROM users
        WHERE (name ILIKE $1 OR email ILIKE $1)
    `
	args := []any{"%" + term + "%"}
	if part != "" {
		query += ` AND position = $2`
		args = append(args, part)
	}
	query += ` ORDER BY name ASC LIMIT 10`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search users", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	results := []model.UserSearchResult{}
	for rows.Next() {
		var u model.UserSearchResult
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Part); err != nil {
			return nil, err
		}
		if u.Part == "" {
			u.Part = "unassigned"
		}
		u.DisplayName = u.Name + " (" + u.Part + ")"
		results = append(results, u)
	}
	return results, rows.Err()
}

// FindByIDs returns compact member info for a set of user ids.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []int) ([]model.MemberInfo, error) {
	if len(ids) == 0 {
		return []model.MemberInfo{}, nil
	}

	query := `
        SELECT id, name, COALESCE(position, '')
        FROM users
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error("Failed to batch fetch users", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := []model.MemberInfo{}
	for rows.Next() {
		var m model.MemberInfo
		if err := rows.Scan(&m.ID, &m.Name, &m.Position); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

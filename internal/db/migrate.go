package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ApplySQLFiles executes each file's statements inside a single transaction,
// rolling everything back if any file fails.
func ApplySQLFiles(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, paths ...string) error {
	return WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, path := range paths {
			sql, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			logger.Info("Applying SQL file", zap.String("path", path))
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				logger.Error("SQL file failed", zap.String("path", path), zap.Error(err))
				return fmt.Errorf("failed to apply %s: %w", path, err)
			}
		}
		return nil
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"taskhub/internal/db"
)

// AdminHandler applies raw SQL files to initialize or migrate the schema.
// Operational tooling only; not part of the serving contract.
type AdminHandler struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewAdminHandler(pool *pgxpool.Pool, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{pool: pool, logger: logger}
}

// InitDB handles POST /api/admin/init-db
func (h *AdminHandler) InitDB(c *gin.Context) {
	err := db.ApplySQLFiles(c.Request.Context(), h.pool, h.logger,
		"database/schema.sql", "database/seed.sql")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "database initialization failed", err)
		return
	}
	respondMessage(c, nil, "database initialized")
}

// Migrate handles POST /api/admin/migrate
func (h *AdminHandler) Migrate(c *gin.Context) {
	err := db.ApplySQLFiles(c.Request.Context(), h.pool, h.logger,
		"database/add_task_columns.sql")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "migration failed", err)
		return
	}
	respondMessage(c, nil, "migration applied")
}

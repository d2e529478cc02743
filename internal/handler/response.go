package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Envelope is the shape every endpoint responds with.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string, err error) {
	env := Envelope{Success: false, Error: message}
	if err != nil {
		env.Details = err.Error()
	}
	c.JSON(status, env)
}

const uniqueViolation = "23505"

// respondDBError converts repository failures into the envelope taxonomy:
// missing row 404, duplicate key 409, anything else 500.
func respondDBError(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, pgx.ErrNoRows) {
		respondError(c, http.StatusNotFound, notFoundMsg, nil)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		respondError(c, http.StatusConflict, "duplicate value for a unique field", nil)
		return
	}

	respondError(c, http.StatusInternalServerError, failMsg, err)
}

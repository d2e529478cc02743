package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRespondDBErrorNoRows(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/", "")
	respondDBError(c, pgx.ErrNoRows, "thing not found", "fetch failed")

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "thing not found", env.Error)
}

func TestRespondDBErrorUniqueViolation(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/", "")
	err := &pgconn.PgError{Code: "23505"}
	respondDBError(c, err, "thing not found", "insert failed")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestRespondDBErrorOther(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/", "")
	respondDBError(c, errors.New("connection reset"), "thing not found", "fetch failed")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "fetch failed", env.Error)
	assert.Equal(t, "connection reset", env.Details)
}

func TestRespondMessage(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/", "")
	respondMessage(c, nil, "all done")

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "all done", env.Message)
	assert.Nil(t, env.Data)
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// A one-character query must not reach the repository at all; the nil
// repository here panics if it does.
func TestSearchShortQuery(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	c, w := testContext(t, http.MethodGet, "/api/users/search?q=a", "")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, []any{}, env.Data)
}

// Multi-byte input must be counted in characters: a single Korean
// character is three bytes but still one character, so it stays under
// the two-character threshold.
func TestSearchSingleMultibyteChar(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	for _, q := range []string{"김", "あ", "한"} {
		c, w := testContext(t, http.MethodGet, "/api/users/search?q="+q, "")
		h.Search(c)

		assert.Equal(t, http.StatusOK, w.Code, "q=%q", q)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Success)
		assert.Equal(t, []any{}, env.Data)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	c, w := testContext(t, http.MethodGet, "/api/users/search", "")
	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

// An empty id list resolves to an empty result without a query.
func TestBatchEmptyIDs(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	c, w := testContext(t, http.MethodPost, "/api/users/batch", `{"userIds": []}`)
	h.Batch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, []any{}, env.Data)
}

func TestBatchMissingIDs(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	c, w := testContext(t, http.MethodPost, "/api/users/batch", `{}`)
	h.Batch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestBatchBadBody(t *testing.T) {
	h := NewUserHandler(nil, zap.NewNop())

	c, w := testContext(t, http.MethodPost, "/api/users/batch", `{"userIds": "not-a-list"}`)
	h.Batch(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

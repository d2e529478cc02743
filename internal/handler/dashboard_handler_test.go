package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCalendarInvalidMonth(t *testing.T) {
	h := NewDashboardHandler(nil, nil, zap.NewNop())

	for _, month := range []string{"", "2025", "2025-5", "2025-13"} {
		c, w := testContext(t, http.MethodGet, "/api/calendar?month="+month, "")
		h.Calendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, "month=%q", month)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "month must be YYYY-MM", env.Error)
	}
}

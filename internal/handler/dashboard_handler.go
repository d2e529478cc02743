package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	calendar  *service.CalendarService
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *service.DashboardService, calendar *service.CalendarService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, calendar: calendar, logger: logger}
}

// Personal handles GET /api/dashboard/personal
func (h *DashboardHandler) Personal(c *gin.Context) {
	data, err := h.dashboard.Personal(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		respondDBError(c, err, "user not found", "failed to compute dashboard")
		return
	}
	respondOK(c, data)
}

// Calendar handles GET /api/calendar?month=YYYY-MM&mine=true
func (h *DashboardHandler) Calendar(c *gin.Context) {
	month := c.Query("month")
	if _, _, err := service.MonthWindow(month); err != nil {
		respondError(c, http.StatusBadRequest, "month must be YYYY-MM", nil)
		return
	}

	var assigneeID *int
	if mine, _ := strconv.ParseBool(c.Query("mine")); mine {
		userID := c.GetInt("user_id")
		assigneeID = &userID
	}

	days, err := h.calendar.Month(c.Request.Context(), month, assigneeID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to build calendar", err)
		return
	}
	respondOK(c, days)
}

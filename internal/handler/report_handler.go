package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/service"
)

type ReportHandler struct {
	reports *service.ReportService
	logger  *zap.Logger
}

func NewReportHandler(reports *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// ProjectReport handles POST /api/projects/:id/weekly-report
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	var req struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		respondError(c, http.StatusBadRequest, "startDate and endDate are required", nil)
		return
	}

	result, err := h.reports.ProjectReport(c.Request.Context(), id,
		service.ReportWindow{Start: req.StartDate, End: req.EndDate})
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to generate weekly report", err)
		return
	}
	respondOK(c, result)
}

// CombinedReport handles POST /api/weekly-report
func (h *ReportHandler) CombinedReport(c *gin.Context) {
	var req struct {
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		ProjectIDs []int  `json:"projectIds"`
		OnlyMine   bool   `json:"onlyMine"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		respondError(c, http.StatusBadRequest, "startDate and endDate are required", nil)
		return
	}
	if len(req.ProjectIDs) == 0 {
		respondError(c, http.StatusBadRequest, "at least one project must be selected", nil)
		return
	}

	var assigneeID *int
	if req.OnlyMine {
		userID := c.GetInt("user_id")
		assigneeID = &userID
	}

	result, err := h.reports.CombinedReport(c.Request.Context(), req.ProjectIDs,
		service.ReportWindow{Start: req.StartDate, End: req.EndDate}, assigneeID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "selected projects not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to generate weekly report", err)
		return
	}
	respondOK(c, result)
}

package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

type StatsHandler struct {
	tasks  *repository.TaskRepository
	logger *zap.Logger
}

func NewStatsHandler(tasks *repository.TaskRepository, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{tasks: tasks, logger: logger}
}

type monthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Get handles GET /api/stats?projectId=. Histograms are computed from raw
// rows on every request; nothing is cached or stored.
func (h *StatsHandler) Get(c *gin.Context) {
	var projectID *int
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid projectId", nil)
			return
		}
		projectID = &id
	}

	ctx := c.Request.Context()

	statusRaw, err := h.tasks.CountBy(ctx, "status", projectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch statistics", err)
		return
	}
	partCounts, err := h.tasks.CountBy(ctx, "part", projectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch statistics", err)
		return
	}
	monthRaw, err := h.tasks.CountBy(ctx, "month", projectID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch statistics", err)
		return
	}

	// All four buckets are always present.
	statusCounts := map[model.TaskStatus]int{
		model.StatusWaiting:    statusRaw[string(model.StatusWaiting)],
		model.StatusInProgress: statusRaw[string(model.StatusInProgress)],
		model.StatusDone:       statusRaw[string(model.StatusDone)],
		model.StatusOnHold:     statusRaw[string(model.StatusOnHold)],
	}

	total := 0
	for _, count := range statusCounts {
		total += count
	}

	months := make([]monthCount, 0, len(monthRaw))
	for month, count := range monthRaw {
		months = append(months, monthCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month > months[j].Month })

	respondOK(c, gin.H{
		"status": statusCounts,
		"parts":  partCounts,
		"months": months,
		"total":  total,
	})
}

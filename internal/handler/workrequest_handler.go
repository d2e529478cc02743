package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

// WorkRequestHandler serves the legacy request tracker endpoints.
type WorkRequestHandler struct {
	requests *repository.WorkRequestRepository
	logger   *zap.Logger
}

func NewWorkRequestHandler(requests *repository.WorkRequestRepository, logger *zap.Logger) *WorkRequestHandler {
	return &WorkRequestHandler{requests: requests, logger: logger}
}

// List handles GET /api/work-requests with optional filters.
func (h *WorkRequestHandler) List(c *gin.Context) {
	filter := repository.WorkRequestFilter{
		Company:          c.Query("company"),
		Designer:         c.Query("designer"),
		Status:           c.Query("status"),
		RequestDateFrom:  c.Query("requestDateFrom"),
		RequestDateUntil: c.Query("requestDateUntil"),
	}

	requests, err := h.requests.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch work requests", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    requests,
		"total":   len(requests),
	})
}

type workRequestBody struct {
	Number          string `json:"number"`
	Division        string `json:"division"`
	Company         string `json:"company"`
	RequestDate     string `json:"requestDate"`
	MaterialDate    string `json:"materialDate"`
	ManagerMD       string `json:"managerMd"`
	Requester       string `json:"requester"`
	TaskName        string `json:"taskName"`
	Content         string `json:"content"`
	WorkNotes       string `json:"workNotes"`
	RequesterURL    string `json:"requesterUrl"`
	Memo            string `json:"memo"`
	Status          string `json:"status"`
	DesignStartDate string `json:"designStartDate"`
	DesignEndDate   string `json:"designEndDate"`
	Designer        string `json:"designer"`
	ReviewDone      int    `json:"reviewDone"`
	Effort          int    `json:"effort"`
}

func (b *workRequestBody) toModel() *model.WorkRequest {
	return &model.WorkRequest{
		Number:          b.Number,
		Division:        b.Division,
		Company:         b.Company,
		RequestDate:     b.RequestDate,
		MaterialDate:    b.MaterialDate,
		ManagerMD:       b.ManagerMD,
		Requester:       b.Requester,
		TaskName:        b.TaskName,
		Content:         b.Content,
		WorkNotes:       b.WorkNotes,
		RequesterURL:    b.RequesterURL,
		Memo:            b.Memo,
		Status:          b.Status,
		DesignStartDate: b.DesignStartDate,
		DesignEndDate:   b.DesignEndDate,
		Designer:        b.Designer,
		ReviewDone:      b.ReviewDone,
		Effort:          b.Effort,
	}
}

// Create handles POST /api/work-requests. A duplicate request number is a
// 409 conflict.
func (h *WorkRequestHandler) Create(c *gin.Context) {
	var req workRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Number == "" || req.Company == "" || req.RequestDate == "" || req.Requester == "" || req.TaskName == "" {
		respondError(c, http.StatusBadRequest, "number, company, requestDate, requester, and taskName are required", nil)
		return
	}
	if req.Status == "" {
		req.Status = "waiting"
	}

	created, err := h.requests.Create(c.Request.Context(), req.toModel())
	if err != nil {
		respondDBError(c, err, "work request not found", "failed to create work request")
		return
	}
	respondCreated(c, created)
}

// Get handles GET /api/work-requests/:id
func (h *WorkRequestHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work request id", nil)
		return
	}

	w, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "work request not found", "failed to fetch work request")
		return
	}
	respondOK(c, w)
}

// Update handles PUT /api/work-requests/:id as a full-row update.
func (h *WorkRequestHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work request id", nil)
		return
	}

	var req workRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.requests.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		respondDBError(c, err, "work request not found", "failed to update work request")
		return
	}
	respondOK(c, updated)
}

// Delete handles DELETE /api/work-requests/:id
func (h *WorkRequestHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work request id", nil)
		return
	}

	deleted, err := h.requests.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete work request", err)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "work request not found", nil)
		return
	}
	respondMessage(c, nil, "work request deleted")
}

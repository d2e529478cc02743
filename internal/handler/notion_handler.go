package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/service"
)

type NotionHandler struct {
	notion *service.NotionService
	logger *zap.Logger
}

func NewNotionHandler(notion *service.NotionService, logger *zap.Logger) *NotionHandler {
	return &NotionHandler{notion: notion, logger: logger}
}

// CreatePage handles POST /api/notion/pages
func (h *NotionHandler) CreatePage(c *gin.Context) {
	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		DatabaseID string `json:"databaseId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(c, http.StatusBadRequest, "title and content are required", nil)
		return
	}

	page, err := h.notion.CreatePage(c.Request.Context(), req.Title, req.Content, req.DatabaseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create notion page", err)
		return
	}
	respondOK(c, page)
}

package handler

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

type UserHandler struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(users *repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetInt("user_id")

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondDBError(c, err, "user not found", "failed to fetch user")
		return
	}

	respondOK(c, gin.H{
		"id":       u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"position": u.Position,
	})
}

// Search handles GET /api/users/search?q=&part=
// Queries under two characters return an empty result without touching
// the database. Length is counted in runes, not bytes, so a single
// Korean character is still one character.
func (h *UserHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if utf8.RuneCountInString(term) < 2 {
		respondOK(c, []model.UserSearchResult{})
		return
	}

	results, err := h.users.Search(c.Request.Context(), term, c.Query("part"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "user search failed", err)
		return
	}
	respondOK(c, results)
}

// Batch handles POST /api/users/batch. An empty id list is a valid
// request with an empty result.
func (h *UserHandler) Batch(c *gin.Context) {
	var req struct {
		UserIDs []int `json:"userIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(req.UserIDs) == 0 {
		respondOK(c, []model.MemberInfo{})
		return
	}

	members, err := h.users.FindByIDs(c.Request.Context(), req.UserIDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch users", err)
		return
	}
	respondOK(c, members)
}

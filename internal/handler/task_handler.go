package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

type TaskHandler struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	logger   *zap.Logger
}

func NewTaskHandler(tasks *repository.TaskRepository, projects *repository.ProjectRepository, users *repository.UserRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, projects: projects, users: users, logger: logger}
}

// List handles GET /api/tasks?projectId=&status=&part=&month=
func (h *TaskHandler) List(c *gin.Context) {
	filter := repository.TaskFilter{
		Status: c.Query("status"),
		Part:   c.Query("part"),
		Month:  c.Query("month"),
	}
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid projectId", nil)
			return
		}
		filter.ProjectID = &id
	}

	tasks, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch tasks", err)
		return
	}
	respondOK(c, tasks)
}

// Create handles POST /api/tasks. The assignee is referenced by id; the
// display name is denormalized onto the row from the users table.
func (h *TaskHandler) Create(c *gin.Context) {
	var req struct {
		ProjectID   int    `json:"projectId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Month       string `json:"month"`
		Category    string `json:"category"`
		Part        string `json:"part"`
		AssigneeID  *int   `json:"assigneeId"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Title == "" || req.ProjectID == 0 || req.Month == "" {
		respondError(c, http.StatusBadRequest, "title, projectId, and month are required", nil)
		return
	}

	status := model.TaskStatus(req.Status)
	if req.Status == "" {
		status = model.StatusWaiting
	} else if !model.ValidStatus(status) {
		respondError(c, http.StatusBadRequest, "invalid status", nil)
		return
	}
	if req.Category == "" {
		req.Category = "development"
	}
	if req.Part == "" {
		req.Part = "frontend"
	}

	assigneeName := ""
	if req.AssigneeID != nil {
		u, err := h.users.FindByID(c.Request.Context(), *req.AssigneeID)
		if err != nil {
			respondDBError(c, err, "assignee not found", "failed to resolve assignee")
			return
		}
		assigneeName = u.Name
	}

	created, err := h.tasks.Create(c.Request.Context(), &model.Task{
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		Month:        req.Month,
		Category:     req.Category,
		Part:         req.Part,
		AssigneeID:   req.AssigneeID,
		AssigneeName: assigneeName,
		Status:       status,
		Priority:     model.TaskPriority(req.Priority),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create task", err)
		return
	}
	respondMessage(c, created, "task created")
}

// UpdateStatus handles PUT /api/tasks/:id/status. The transition graph is
// enforced here: waiting→in-progress, in-progress→done/on-hold,
// on-hold→in-progress, and self-transitions.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id", nil)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	status := model.TaskStatus(req.Status)
	if !model.ValidStatus(status) {
		respondError(c, http.StatusBadRequest, "invalid status", nil)
		return
	}

	current, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "task not found", "failed to fetch task")
		return
	}
	if !model.CanTransition(current.Status, status) {
		respondError(c, http.StatusBadRequest,
			"cannot move task from "+string(current.Status)+" to "+string(status), nil)
		return
	}

	updated, err := h.tasks.UpdateStatus(c.Request.Context(), id, status,
		current.CompletionStampAt(status, time.Now()))
	if err != nil {
		respondDBError(c, err, "task not found", "failed to update task status")
		return
	}
	respondOK(c, updated)
}

// PMConfirm handles POST /api/tasks/:id/pm-confirm. Only the project's
// designated PM may confirm; repeating the call is a no-op that returns
// the already-confirmed task.
func (h *TaskHandler) PMConfirm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid task id", nil)
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "task not found", "failed to fetch task")
		return
	}

	project, err := h.projects.Get(c.Request.Context(), task.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(c, http.StatusNotFound, "project not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch project", err)
		return
	}

	if c.GetInt("user_id") != project.PMID {
		respondError(c, http.StatusForbidden, "only the project PM can confirm tasks", nil)
		return
	}

	confirmed, err := h.tasks.ConfirmPM(c.Request.Context(), id, task.ConfirmationDateAt(time.Now()))
	if err != nil {
		respondDBError(c, err, "task not found", "failed to confirm task")
		return
	}
	respondMessage(c, confirmed, "task confirmed")
}

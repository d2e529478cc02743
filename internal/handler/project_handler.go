package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/model"
	"taskhub/internal/repository"
)

type ProjectHandler struct {
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	users    *repository.UserRepository
	logger   *zap.Logger
}

func NewProjectHandler(projects *repository.ProjectRepository, tasks *repository.TaskRepository, users *repository.UserRepository, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks, users: users, logger: logger}
}

// List handles GET /api/projects?status=active|completed|all&memberId=.
// A project stays active through the last calendar day of its end month.
func (h *ProjectHandler) List(c *gin.Context) {
	var memberID *int
	if raw := c.Query("memberId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid memberId", nil)
			return
		}
		memberID = &id
	}

	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch projects", err)
		return
	}
	respondOK(c, model.FilterProjects(projects, c.Query("status"), memberID, time.Now()))
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		StartMonth      string `json:"startMonth"`
		EndMonth        string `json:"endMonth"`
		PMID            int    `json:"pmId"`
		PMName          string `json:"pmName"`
		FrontendMembers []int  `json:"frontendMembers"`
		BackendMembers  []int  `json:"backendMembers"`
		DesignerMembers []int  `json:"designerMembers"`
		UXMembers       []int  `json:"uxMembers"`
		AppMembers      []int  `json:"appMembers"`
		AIMembers       []int  `json:"aiMembers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.StartMonth == "" || req.EndMonth == "" || req.PMID == 0 {
		respondError(c, http.StatusBadRequest, "name, startMonth, endMonth, and pmId are required", nil)
		return
	}
	if req.StartMonth >= req.EndMonth {
		respondError(c, http.StatusBadRequest, "startMonth must be before endMonth", nil)
		return
	}

	emptyIfNil := func(ids []int) []int {
		if ids == nil {
			return []int{}
		}
		return ids
	}

	p := &model.Project{
		Name:            req.Name,
		Description:     req.Description,
		StartMonth:      req.StartMonth,
		EndMonth:        req.EndMonth,
		PMID:            req.PMID,
		PMName:          req.PMName,
		FrontendMembers: emptyIfNil(req.FrontendMembers),
		BackendMembers:  emptyIfNil(req.BackendMembers),
		DesignerMembers: emptyIfNil(req.DesignerMembers),
		UXMembers:       emptyIfNil(req.UXMembers),
		AppMembers:      emptyIfNil(req.AppMembers),
		AIMembers:       emptyIfNil(req.AIMembers),
	}
	if err := h.projects.Create(c.Request.Context(), p); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create project", err)
		return
	}
	respondCreated(c, p)
}

// Get handles GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "project not found", "failed to fetch project")
		return
	}
	respondOK(c, p)
}

// Members handles GET /api/projects/:id/members — everyone appearing in
// any of the six role arrays.
func (h *ProjectHandler) Members(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		respondDBError(c, err, "project not found", "failed to fetch project")
		return
	}

	members, err := h.users.FindByIDs(c.Request.Context(), p.MemberIDs())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch members", err)
		return
	}
	respondOK(c, members)
}

// MemberTasks handles GET /api/projects/:id/member-tasks
func (h *ProjectHandler) MemberTasks(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}

	tasks, err := h.tasks.ListByProjects(c.Request.Context(), []int{id}, nil)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch project tasks", err)
		return
	}
	respondOK(c, tasks)
}

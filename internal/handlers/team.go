package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/response"
	"gorm.io/gorm"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		teamService: services.NewTeamService(db),
	}
}

// List returns all teams
// GET /api/teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, teams)
}

// GetByID returns a team with its members
// GET /api/teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, team)
}

// GetByInviteCode resolves a team from its invite code
// GET /api/teams/invite/:code
func (h *TeamHandler) GetByInviteCode(c *gin.Context) {
	team, err := h.teamService.GetByInviteCode(c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, team)
}

// Create creates a new team
// POST /api/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req services.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, team)
}

// Update changes a team's name and description
// PUT /api/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	var req services.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.teamService.Update(id, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete removes a team, detaching its members
// DELETE /api/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Join adds a student to a team
// POST /api/teams/:id/join/:studentId
func (h *TeamHandler) Join(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId", "student")
	if !ok {
		return
	}

	if err := h.teamService.Join(teamID, studentID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// JoinByCode joins a team through its invite code
// POST /api/teams/join-by-code
func (h *TeamHandler) JoinByCode(c *gin.Context) {
	var req services.JoinByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.JoinByInviteCode(req.InviteCode, req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, team)
}

// ListTasks returns the tasks tagged with the team
// GET /api/teams/:id/tasks
func (h *TeamHandler) ListTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	tasks, err := h.teamService.ListTasks(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}

// ListAllTasks returns team tasks plus tasks assigned to any member
// GET /api/teams/:id/all-tasks
func (h *TeamHandler) ListAllTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "team")
	if !ok {
		return
	}

	tasks, err := h.teamService.ListAllTasks(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, tasks)
}

// parseIDParam parses a numeric path parameter, replying 400 on failure.
func parseIDParam(c *gin.Context, name, noun string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+noun+" id")
		return 0, false
	}
	return uint(id), true
}

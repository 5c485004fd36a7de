package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetAllProjects handles GET /projects
// @Summary List all projects
// @Description Get all projects with team lead, members and attachments populated
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "Successfully retrieved projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) GetAllProjects(c *gin.Context) {
	projects, err := h.projectService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project with attachments and team members; status must belong to the fixed enumeration
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 200 {object} models.Project "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid project status"
// @Failure 404 {object} ErrorResponse "Team lead or member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidProjectStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a specific project by its UUID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Description Update a project; the attachment and member lists replace the stored sets wholesale
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Project data"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid project status"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidProjectStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrProjectNotFound) || errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ReplaceTeam handles PUT /projects/:id/team
// @Summary Replace a project's team membership
// @Description Make the stored membership set equal to the supplied set of person IDs
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param team body object true "Object with a teamMemberIds array"
// @Success 200 {object} map[string]bool "Membership replaced"
// @Failure 400 {object} ErrorResponse "teamMemberIds must be an array"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id}/team [put]
func (h *ProjectHandler) ReplaceTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var body struct {
		TeamMemberIDs json.RawMessage `json:"teamMemberIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing field or JSON null unmarshals into a nil slice without error,
	// so reject those explicitly along with non-array payloads.
	var personIDs []uuid.UUID
	if len(body.TeamMemberIDs) == 0 || string(body.TeamMemberIDs) == "null" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrTeamMemberIDsNotArray.Error()})
		return
	}
	if err := json.Unmarshal(body.TeamMemberIDs, &personIDs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrTeamMemberIDsNotArray.Error()})
		return
	}

	if err := h.projectService.ReplaceTeamMembers(id, personIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating team members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project together with its attachments, membership rows and tasks
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

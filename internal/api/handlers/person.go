package handlers

import (
	"errors"
	"net/http"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PersonHandler handles HTTP requests for person operations
type PersonHandler struct {
	personService service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// GetAllPersons handles GET /persons
// @Summary List all persons
// @Description Get all persons with their project and hardware relations populated
// @Tags persons
// @Produce json
// @Success 200 {array} models.Person "Successfully retrieved persons"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /persons [get]
func (h *PersonHandler) GetAllPersons(c *gin.Context) {
	persons, err := h.personService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching persons"})
		return
	}

	c.JSON(http.StatusOK, persons)
}

// CreatePerson handles POST /persons
// @Summary Create a new person
// @Description Create a new person with a role from the fixed enumeration
// @Tags persons
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 200 {object} models.Person "Successfully created person"
// @Failure 400 {object} ErrorResponse "Invalid person role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /persons [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPersonRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating person"})
		return
	}

	c.JSON(http.StatusOK, person)
}

// GetPerson handles GET /persons/:id
// @Summary Get person by ID
// @Description Get a specific person by its UUID
// @Tags persons
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} models.Person "Successfully retrieved person"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /persons/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person ID"})
		return
	}

	person, err := h.personService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching person"})
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePerson handles PUT /persons/:id
// @Summary Update a person
// @Description Update a person's name, role and picture
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Param person body service.UpdatePersonRequest true "Person data"
// @Success 200 {object} models.Person "Successfully updated person"
// @Failure 400 {object} ErrorResponse "Invalid person role"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /persons/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person ID"})
		return
	}

	var req service.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	person, err := h.personService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPersonRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating person"})
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /persons/:id
// @Summary Delete a person
// @Description Delete a person; projects they lead or belong to are not removed
// @Tags persons
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted person"
// @Failure 400 {object} ErrorResponse "Invalid person ID"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /persons/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid person ID"})
		return
	}

	if err := h.personService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting person"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}

package handlers

import (
	"errors"
	"net/http"

	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HardwareHandler handles HTTP requests for hardware operations
type HardwareHandler struct {
	hardwareService service.HardwareServiceInterface
}

// NewHardwareHandler creates a new hardware handler
func NewHardwareHandler(hardwareService service.HardwareServiceInterface) *HardwareHandler {
	return &HardwareHandler{
		hardwareService: hardwareService,
	}
}

// GetAllHardware handles GET /hardware
// @Summary List all hardware
// @Description Get all hardware assets with the issued-to person populated
// @Tags hardware
// @Produce json
// @Success 200 {array} models.Hardware "Successfully retrieved hardware"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hardware [get]
func (h *HardwareHandler) GetAllHardware(c *gin.Context) {
	hardware, err := h.hardwareService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching hardware"})
		return
	}

	c.JSON(http.StatusOK, hardware)
}

// CreateHardware handles POST /hardware
// @Summary Create a new hardware record
// @Description Create a hardware asset, optionally issued to a person
// @Tags hardware
// @Accept json
// @Produce json
// @Param hardware body service.CreateHardwareRequest true "Hardware data"
// @Success 200 {object} models.Hardware "Successfully created hardware"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hardware [post]
func (h *HardwareHandler) CreateHardware(c *gin.Context) {
	var req service.CreateHardwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hardware, err := h.hardwareService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating hardware"})
		return
	}

	c.JSON(http.StatusOK, hardware)
}

// GetHardware handles GET /hardware/:id
// @Summary Get hardware by ID
// @Description Get a specific hardware asset by its UUID
// @Tags hardware
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Success 200 {object} models.Hardware "Successfully retrieved hardware"
// @Failure 400 {object} ErrorResponse "Invalid hardware ID"
// @Failure 404 {object} ErrorResponse "Hardware not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hardware/{id} [get]
func (h *HardwareHandler) GetHardware(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hardware ID"})
		return
	}

	hardware, err := h.hardwareService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrHardwareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching hardware"})
		return
	}

	c.JSON(http.StatusOK, hardware)
}

// UpdateHardware handles PUT /hardware/:id
// @Summary Update a hardware record
// @Description Apply partial field changes to a hardware asset
// @Tags hardware
// @Accept json
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Param hardware body service.UpdateHardwareRequest true "Hardware fields"
// @Success 200 {object} models.Hardware "Successfully updated hardware"
// @Failure 400 {object} ErrorResponse "Invalid hardware ID"
// @Failure 404 {object} ErrorResponse "Hardware not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hardware/{id} [put]
func (h *HardwareHandler) UpdateHardware(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hardware ID"})
		return
	}

	var req service.UpdateHardwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hardware, err := h.hardwareService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHardwareNotFound) || errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating hardware"})
		return
	}

	c.JSON(http.StatusOK, hardware)
}

// DeleteHardware handles DELETE /hardware/:id
// @Summary Delete a hardware record
// @Description Delete a hardware asset
// @Tags hardware
// @Produce json
// @Param id path string true "Hardware ID (UUID)"
// @Success 200 {object} map[string]string "Successfully deleted hardware"
// @Failure 400 {object} ErrorResponse "Invalid hardware ID"
// @Failure 404 {object} ErrorResponse "Hardware not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hardware/{id} [delete]
func (h *HardwareHandler) DeleteHardware(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hardware ID"})
		return
	}

	if err := h.hardwareService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrHardwareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting hardware"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hardware deleted successfully"})
}

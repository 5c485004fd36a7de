package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HardwareRepository handles database operations for hardware assets
type HardwareRepository struct {
	db *gorm.DB
}

// NewHardwareRepository creates a new hardware repository
func NewHardwareRepository(db *gorm.DB) *HardwareRepository {
	return &HardwareRepository{db: db}
}

// Create creates a new hardware record
func (r *HardwareRepository) Create(hardware *models.Hardware) error {
	return r.db.Create(hardware).Error
}

// GetByID retrieves a hardware record by ID with the issued-to person populated
func (r *HardwareRepository) GetByID(id uuid.UUID) (*models.Hardware, error) {
	var hardware models.Hardware
	err := r.db.Preload("IssuedTo").First(&hardware, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hardware, nil
}

// GetAll retrieves all hardware records with the issued-to person populated
func (r *HardwareRepository) GetAll() ([]models.Hardware, error) {
	var hardware []models.Hardware
	err := r.db.Preload("IssuedTo").Find(&hardware).Error
	if err != nil {
		return nil, err
	}
	return hardware, nil
}

// Update saves changes to an existing hardware record
func (r *HardwareRepository) Update(hardware *models.Hardware) error {
	return r.db.Omit("IssuedTo").Save(hardware).Error
}

// Delete removes a hardware record
func (r *HardwareRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Hardware{}, "id = ?", id).Error
}

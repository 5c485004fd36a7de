package service

import (
	"errors"
	"fmt"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HardwareService handles business logic for hardware assets
type HardwareService struct {
	repo       repository.HardwareRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	validator  *validator.Validate
}

// NewHardwareService creates a new hardware service
func NewHardwareService(repo repository.HardwareRepositoryInterface, personRepo repository.PersonRepositoryInterface, validator *validator.Validate) *HardwareService {
	return &HardwareService{
		repo:       repo,
		personRepo: personRepo,
		validator:  validator,
	}
}

// CreateHardwareRequest represents the request to create a hardware record
type CreateHardwareRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Description    *string    `json:"description,omitempty"`
	DateOfPurchase time.Time  `json:"dateOfPurchase" validate:"required"`
	IssuedToID     *uuid.UUID `json:"issuedToId,omitempty"`
}

// UpdateHardwareRequest represents a partial update to a hardware record
type UpdateHardwareRequest struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string    `json:"description,omitempty"`
	DateOfPurchase *time.Time `json:"dateOfPurchase,omitempty"`
	IssuedToID     *uuid.UUID `json:"issuedToId,omitempty"`
}

// Create creates a new hardware record. An issued-to reference, when present,
// must point at an existing person.
func (s *HardwareService) Create(req *CreateHardwareRequest) (*models.Hardware, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.IssuedToID != nil {
		if _, err := s.personRepo.GetByID(*req.IssuedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify person: %w", err)
		}
	}

	hardware := &models.Hardware{
		Name:           req.Name,
		Description:    req.Description,
		DateOfPurchase: req.DateOfPurchase,
		IssuedToID:     req.IssuedToID,
	}

	if err := s.repo.Create(hardware); err != nil {
		return nil, fmt.Errorf("failed to create hardware: %w", err)
	}

	return s.GetByID(hardware.ID)
}

// GetByID retrieves a hardware record by ID with the issued-to person populated
func (s *HardwareService) GetByID(id uuid.UUID) (*models.Hardware, error) {
	hardware, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHardwareNotFound
		}
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}
	return hardware, nil
}

// GetAll retrieves all hardware records
func (s *HardwareService) GetAll() ([]models.Hardware, error) {
	hardware, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}
	return hardware, nil
}

// Update applies the supplied fields to an existing hardware record
func (s *HardwareService) Update(id uuid.UUID, req *UpdateHardwareRequest) (*models.Hardware, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hardware, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHardwareNotFound
		}
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}

	if req.IssuedToID != nil {
		if _, err := s.personRepo.GetByID(*req.IssuedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify person: %w", err)
		}
	}

	if req.Name != nil {
		hardware.Name = *req.Name
	}
	if req.Description != nil {
		hardware.Description = req.Description
	}
	if req.DateOfPurchase != nil {
		hardware.DateOfPurchase = *req.DateOfPurchase
	}
	if req.IssuedToID != nil {
		hardware.IssuedToID = req.IssuedToID
	}

	if err := s.repo.Update(hardware); err != nil {
		return nil, fmt.Errorf("failed to update hardware: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes a hardware record
func (s *HardwareService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHardwareNotFound
		}
		return fmt.Errorf("failed to get hardware: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hardware: %w", err)
	}
	return nil
}

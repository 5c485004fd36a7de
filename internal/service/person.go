package service

import (
	"errors"
	"fmt"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonService handles business logic for persons
type PersonService struct {
	repo      repository.PersonRepositoryInterface
	validator *validator.Validate
}

// NewPersonService creates a new person service
func NewPersonService(repo repository.PersonRepositoryInterface, validator *validator.Validate) *PersonService {
	return &PersonService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Role    string  `json:"role" validate:"required"`
	Picture *string `json:"picture,omitempty"`
}

// UpdatePersonRequest represents the request to update a person
type UpdatePersonRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Role    string  `json:"role" validate:"required"`
	Picture *string `json:"picture,omitempty"`
}

// Create creates a new person. The role is checked against the fixed enumeration
// before any row is written.
func (s *PersonService) Create(req *CreatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.PersonRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidPersonRole
	}

	person := &models.Person{
		Name:    req.Name,
		Role:    role,
		Picture: req.Picture,
	}

	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	// Re-read with relations so the response carries the (empty) relation arrays
	return s.GetByID(person.ID)
}

// GetByID retrieves a person by ID with relations populated
func (s *PersonService) GetByID(id uuid.UUID) (*models.Person, error) {
	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	normalizePersonRelations(person)
	return person, nil
}

// GetAll retrieves all persons with relations populated
func (s *PersonService) GetAll() ([]models.Person, error) {
	persons, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}
	for i := range persons {
		normalizePersonRelations(&persons[i])
	}
	return persons, nil
}

// Update updates a person's scalar fields. The role is validated before the write.
func (s *PersonService) Update(id uuid.UUID, req *UpdatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.PersonRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidPersonRole
	}

	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	person.Name = req.Name
	person.Role = role
	person.Picture = req.Picture

	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes a person. Projects the person leads or belongs to are not
// cascaded; deleting the lead of an existing project surfaces as a storage error.
func (s *PersonService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to get person: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

// normalizePersonRelations makes sure relation fields serialize as arrays, not null
func normalizePersonRelations(person *models.Person) {
	if person.LeadingProjects == nil {
		person.LeadingProjects = []models.Project{}
	}
	if person.MemberOfProjects == nil {
		person.MemberOfProjects = []models.Project{}
	}
	if person.AssignedHardware == nil {
		person.AssignedHardware = []models.Hardware{}
	}
}

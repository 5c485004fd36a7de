package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id uuid.UUID) (*models.Person, error)
	GetByIDs(ids []uuid.UUID) ([]models.Person, error)
	GetAll() ([]models.Person, error)
	Update(person *models.Person) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
	ReplaceAttachments(projectID uuid.UUID, attachments []models.ProjectAttachment) error
	ReplaceMembers(project *models.Project, members []models.Person) error
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team membership operations
type TeamMemberRepositoryInterface interface {
	ReplaceForProject(projectID uuid.UUID, personIDs []uuid.UUID) error
	GetByProjectID(projectID uuid.UUID) ([]models.TeamMember, error)
}

// HardwareRepositoryInterface defines the interface for hardware repository operations
type HardwareRepositoryInterface interface {
	Create(hardware *models.Hardware) error
	GetByID(id uuid.UUID) (*models.Hardware, error)
	GetAll() ([]models.Hardware, error)
	Update(hardware *models.Hardware) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetAll() ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

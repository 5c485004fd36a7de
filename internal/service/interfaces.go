package service

import (
	"mime/multipart"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PersonServiceInterface defines the interface for person business logic
type PersonServiceInterface interface {
	Create(req *CreatePersonRequest) (*models.Person, error)
	GetByID(id uuid.UUID) (*models.Person, error)
	GetAll() ([]models.Person, error)
	Update(id uuid.UUID, req *UpdatePersonRequest) (*models.Person, error)
	Delete(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project business logic
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*models.Project, error)
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error)
	ReplaceTeamMembers(projectID uuid.UUID, personIDs []uuid.UUID) error
	Delete(id uuid.UUID) error
}

// HardwareServiceInterface defines the interface for hardware business logic
type HardwareServiceInterface interface {
	Create(req *CreateHardwareRequest) (*models.Hardware, error)
	GetByID(id uuid.UUID) (*models.Hardware, error)
	GetAll() ([]models.Hardware, error)
	Update(id uuid.UUID, req *UpdateHardwareRequest) (*models.Hardware, error)
	Delete(id uuid.UUID) error
}

// TaskServiceInterface defines the interface for task business logic
type TaskServiceInterface interface {
	Create(req *CreateTaskRequest) (*models.Task, error)
	GetByID(id uuid.UUID) (*models.Task, error)
	GetAll() ([]models.Task, error)
	Update(id uuid.UUID, req *UpdateTaskRequest) (*models.Task, error)
	Delete(id uuid.UUID) error
}

// UploadServiceInterface defines the interface for the attachment store front
type UploadServiceInterface interface {
	SaveFiles(files []*multipart.FileHeader) ([]FileDescriptor, error)
}

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

// TaskService handles business logic for tasks
type TaskService struct {
	repo        repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	ProjectID uuid.UUID  `json:"projectId" validate:"required"`
	PersonID  *uuid.UUID `json:"personId,omitempty"`
	Title     string     `json:"title" validate:"required,max=200"`
	StartDate time.Time  `json:"startDate" validate:"required"`
	EndDate   time.Time  `json:"endDate" validate:"required"`
	Status    string     `json:"status" validate:"required"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	ProjectID uuid.UUID  `json:"projectId" validate:"required"`
	PersonID  *uuid.UUID `json:"personId,omitempty"`
	Title     string     `json:"title" validate:"required,max=200"`
	StartDate time.Time  `json:"startDate" validate:"required"`
	EndDate   time.Time  `json:"endDate" validate:"required"`
	Status    string     `json:"status" validate:"required"`
}

// Create creates a new task. The status is constrained to the fixed enumeration
// and the owning project must exist.
func (s *TaskService) Create(req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.TaskStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	task := &models.Task{
		ProjectID: req.ProjectID,
		PersonID:  req.PersonID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.GetByID(task.ID)
}

// GetByID retrieves a task by ID with its project and assignee populated
func (s *TaskService) GetByID(id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetAll retrieves all tasks with their project and assignee populated
func (s *TaskService) GetAll() ([]models.Task, error) {
	tasks, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// Update updates a task
func (s *TaskService) Update(id uuid.UUID, req *UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.TaskStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task.ProjectID = req.ProjectID
	task.PersonID = req.PersonID
	task.Title = req.Title
	task.StartDate = req.StartDate
	task.EndDate = req.EndDate
	task.Status = status

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.GetByID(id)
}

// Delete removes a task
func (s *TaskService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

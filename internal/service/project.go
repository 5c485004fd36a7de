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

// ProjectService handles business logic for projects, including the attachment
// set replacement and the team membership reconciliation.
type ProjectService struct {
	repo           repository.ProjectRepositoryInterface
	personRepo     repository.PersonRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	validator      *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, personRepo repository.PersonRepositoryInterface, teamMemberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:           repo,
		personRepo:     personRepo,
		teamMemberRepo: teamMemberRepo,
		validator:      validator,
	}
}

// AttachmentInput is the immutable descriptor supplied when creating or updating a
// project, as returned by the upload endpoint.
type AttachmentInput struct {
	FileName string  `json:"fileName" validate:"required,max=255"`
	FileURL  string  `json:"fileUrl" validate:"required,max=500"`
	FileType *string `json:"fileType,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name              string            `json:"name" validate:"required,max=200"`
	Description       *string           `json:"description,omitempty"`
	StartDate         time.Time         `json:"startDate" validate:"required"`
	Status            string            `json:"status" validate:"required"`
	TeamLeadID        uuid.UUID         `json:"teamLeadId" validate:"required"`
	ClientName        string            `json:"clientName"`
	LatestUpdate      *string           `json:"latestUpdate,omitempty"`
	ToolStack         string            `json:"toolStack"`
	Database          string            `json:"database"`
	DeploymentDetails string            `json:"deploymentDetails"`
	UsersCount        int               `json:"usersCount"`
	Attachments       []AttachmentInput `json:"attachments,omitempty" validate:"dive"`
	TeamMemberIDs     []uuid.UUID       `json:"teamMemberIds,omitempty"`
}

// UpdateProjectRequest represents the request to update a project. The attachment
// and member lists replace the stored sets wholesale.
type UpdateProjectRequest struct {
	Name              string            `json:"name" validate:"required,max=200"`
	Description       *string           `json:"description,omitempty"`
	StartDate         time.Time         `json:"startDate" validate:"required"`
	Status            string            `json:"status" validate:"required"`
	TeamLeadID        uuid.UUID         `json:"teamLeadId" validate:"required"`
	ClientName        string            `json:"clientName"`
	LatestUpdate      *string           `json:"latestUpdate,omitempty"`
	ToolStack         string            `json:"toolStack"`
	Database          string            `json:"database"`
	DeploymentDetails string            `json:"deploymentDetails"`
	UsersCount        int               `json:"usersCount"`
	Attachments       []AttachmentInput `json:"attachments,omitempty" validate:"dive"`
	TeamMemberIDs     []uuid.UUID       `json:"teamMemberIds,omitempty"`
}

// Create creates a new project with its attachments and membership rows.
// The status is checked against the fixed enumeration and the team lead must
// reference an existing person before any row is written.
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.ProjectStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidProjectStatus
	}

	if _, err := s.personRepo.GetByID(req.TeamLeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to verify team lead: %w", err)
	}

	members, err := s.resolveMembers(req.TeamMemberIDs)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:              req.Name,
		Description:       req.Description,
		StartDate:         req.StartDate,
		Status:            status,
		TeamLeadID:        req.TeamLeadID,
		ClientName:        req.ClientName,
		LatestUpdate:      req.LatestUpdate,
		ToolStack:         req.ToolStack,
		Database:          req.Database,
		DeploymentDetails: req.DeploymentDetails,
		UsersCount:        req.UsersCount,
		TeamMembers:       members,
		Attachments:       attachmentsFromInputs(req.Attachments),
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.GetByID(project.ID)
}

// GetByID retrieves a project by ID with team lead, members and attachments populated
func (s *ProjectService) GetByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	normalizeProjectRelations(project)
	return project, nil
}

// GetAll retrieves all projects with relations populated
func (s *ProjectService) GetAll() ([]models.Project, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	for i := range projects {
		normalizeProjectRelations(&projects[i])
	}
	return projects, nil
}

// Update replaces a project's scalar fields, its attachment set (delete-all then
// recreate) and its membership set (association set-replace).
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.ProjectStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidProjectStatus
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if _, err := s.personRepo.GetByID(req.TeamLeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to verify team lead: %w", err)
	}

	members, err := s.resolveMembers(req.TeamMemberIDs)
	if err != nil {
		return nil, err
	}

	// Attachment descriptors are immutable: drop the prior set, insert the new one
	if err := s.repo.ReplaceAttachments(id, attachmentsFromInputs(req.Attachments)); err != nil {
		return nil, fmt.Errorf("failed to replace attachments: %w", err)
	}

	if err := s.repo.ReplaceMembers(project, members); err != nil {
		return nil, fmt.Errorf("failed to replace team members: %w", err)
	}

	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.Status = status
	project.TeamLeadID = req.TeamLeadID
	project.ClientName = req.ClientName
	project.LatestUpdate = req.LatestUpdate
	project.ToolStack = req.ToolStack
	project.Database = req.Database
	project.DeploymentDetails = req.DeploymentDetails
	project.UsersCount = req.UsersCount

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.GetByID(id)
}

// ReplaceTeamMembers reconciles the stored membership set of a project to the
// desired set of person IDs via the dedicated delete-then-insert path.
func (s *ProjectService) ReplaceTeamMembers(projectID uuid.UUID, personIDs []uuid.UUID) error {
	if err := s.teamMemberRepo.ReplaceForProject(projectID, personIDs); err != nil {
		return fmt.Errorf("failed to replace team members: %w", err)
	}
	return nil
}

// Delete removes a project together with its attachments, membership rows and tasks
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// resolveMembers loads the persons behind the requested member IDs, rejecting
// references to persons that do not exist.
func (s *ProjectService) resolveMembers(ids []uuid.UUID) ([]models.Person, error) {
	if len(ids) == 0 {
		return []models.Person{}, nil
	}
	members, err := s.personRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team members: %w", err)
	}
	found := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		found[m.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return nil, apperrors.ErrPersonNotFound
		}
	}
	return members, nil
}

func attachmentsFromInputs(inputs []AttachmentInput) []models.ProjectAttachment {
	attachments := make([]models.ProjectAttachment, 0, len(inputs))
	for _, in := range inputs {
		attachments = append(attachments, models.ProjectAttachment{
			FileName: in.FileName,
			FileURL:  in.FileURL,
			FileType: in.FileType,
			FileSize: in.FileSize,
		})
	}
	return attachments
}

// normalizeProjectRelations makes sure relation fields serialize as arrays, not null
func normalizeProjectRelations(project *models.Project) {
	if project.TeamMembers == nil {
		project.TeamMembers = []models.Person{}
	}
	if project.Attachments == nil {
		project.Attachments = []models.ProjectAttachment{}
	}
}

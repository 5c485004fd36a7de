package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects and their owned relations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project together with its attachments and membership rows
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID with team lead, members and attachments populated
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("TeamLead").
		Preload("TeamMembers").
		Preload("Attachments").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with their relations populated
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("TeamLead").
		Preload("TeamMembers").
		Preload("Attachments").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves scalar field changes to an existing project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Omit("TeamLead", "TeamMembers", "Attachments", "Tasks").Save(project).Error
}

// ReplaceAttachments replaces the full attachment set of a project.
// Descriptors are immutable, so the prior set is deleted and the new one inserted.
func (r *ProjectRepository) ReplaceAttachments(projectID uuid.UUID, attachments []models.ProjectAttachment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectAttachment{}).Error; err != nil {
			return err
		}
		if len(attachments) == 0 {
			return nil
		}
		for i := range attachments {
			attachments[i].ProjectID = projectID
		}
		return tx.Create(&attachments).Error
	})
}

// ReplaceMembers replaces the project's membership set using the association primitive
func (r *ProjectRepository) ReplaceMembers(project *models.Project, members []models.Person) error {
	assoc := r.db.Model(project).Association("TeamMembers")
	if len(members) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&members)
}

// Delete removes a project and everything it owns: attachments, membership rows and
// tasks go first so the cascade is explicit rather than asserted by schema comments.
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectAttachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles the project membership join rows
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// ReplaceForProject makes the stored membership set equal to the desired set of
// person IDs: delete every existing row for the project, then insert one row per
// desired person unless the pair already exists. The whole replace runs in a single
// transaction so concurrent reconciliations serialize against each other and no
// reader observes the transient empty set.
func (r *TeamMemberRepository) ReplaceForProject(projectID uuid.UUID, personIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		for _, personID := range personIDs {
			var count int64
			if err := tx.Model(&models.TeamMember{}).
				Where("project_id = ? AND person_id = ?", projectID, personID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			row := models.TeamMember{ProjectID: projectID, PersonID: personID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByProjectID retrieves the membership rows for a project
func (r *TeamMemberRepository) GetByProjectID(projectID uuid.UUID) ([]models.TeamMember, error) {
	var rows []models.TeamMember
	err := r.db.Where("project_id = ?", projectID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

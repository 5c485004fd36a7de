package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is the join row between a person and a project.
// The composite primary key keeps each (project, person) pair unique.
type TeamMember struct {
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;primaryKey"`
	PersonID  uuid.UUID `json:"personId" gorm:"type:uuid;primaryKey;index:idx_team_members_person_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

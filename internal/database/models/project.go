package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a managed project with its team and attachments
type Project struct {
	BaseModel
	Name              string        `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description       *string       `json:"description,omitempty" gorm:"size:2000"`
	StartDate         time.Time     `json:"startDate" gorm:"not null"`
	Status            ProjectStatus `json:"status" gorm:"type:varchar(40);not null" validate:"required"`
	TeamLeadID        uuid.UUID     `json:"teamLeadId" gorm:"type:uuid;not null;index" validate:"required"`
	ClientName        string        `json:"clientName" gorm:"size:200"`
	LatestUpdate      *string       `json:"latestUpdate,omitempty" gorm:"size:2000"`
	ToolStack         string        `json:"toolStack" gorm:"size:500"`
	Database          string        `json:"database" gorm:"size:200"`
	DeploymentDetails string        `json:"deploymentDetails" gorm:"size:1000"`
	UsersCount        int           `json:"usersCount" gorm:"default:0"`

	// Relationships
	TeamLead    Person              `json:"teamLead" gorm:"foreignKey:TeamLeadID"`
	TeamMembers []Person            `json:"teamMembers" gorm:"many2many:team_members;joinForeignKey:ProjectID;joinReferences:PersonID"`
	Attachments []ProjectAttachment `json:"attachments" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks       []Task              `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work within a project, optionally assigned to a person
type Task struct {
	BaseModel
	ProjectID uuid.UUID  `json:"projectId" gorm:"type:uuid;not null;index" validate:"required"`
	PersonID  *uuid.UUID `json:"personId,omitempty" gorm:"type:uuid;index"`
	Title     string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	StartDate time.Time  `json:"startDate" gorm:"not null"`
	EndDate   time.Time  `json:"endDate" gorm:"not null"`
	Status    TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'Created'"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Person  *Person  `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectAttachment represents an uploaded file owned by exactly one project.
// Descriptors are immutable once created; a project update replaces the whole set.
type ProjectAttachment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FileName   string    `json:"fileName" gorm:"not null;size:255" validate:"required,max=255"`
	FileURL    string    `json:"fileUrl" gorm:"not null;size:500" validate:"required,max=500"`
	FileType   *string   `json:"fileType,omitempty" gorm:"size:100"`
	FileSize   *int64    `json:"fileSize,omitempty"`
	ProjectID  uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"autoCreateTime"`
}

// BeforeCreate sets the UUID if not already set
func (a *ProjectAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for ProjectAttachment
func (ProjectAttachment) TableName() string {
	return "project_attachments"
}

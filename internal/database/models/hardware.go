package models

import (
	"time"

	"github.com/google/uuid"
)

// Hardware represents a hardware asset, optionally issued to a person
type Hardware struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    *string    `json:"description,omitempty" gorm:"size:2000"`
	DateOfPurchase time.Time  `json:"dateOfPurchase" gorm:"not null"`
	IssuedToID     *uuid.UUID `json:"issuedToId,omitempty" gorm:"type:uuid;index"`

	// Relationships
	IssuedTo *Person `json:"issuedTo,omitempty" gorm:"foreignKey:IssuedToID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Hardware
func (Hardware) TableName() string {
	return "hardware"
}

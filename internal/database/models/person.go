package models

// Person represents a team member of the organization
type Person struct {
	BaseModel
	Name    string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role    PersonRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Picture *string    `json:"picture,omitempty" gorm:"size:500"`

	// Relationships
	LeadingProjects  []Project  `json:"leadingProjects" gorm:"foreignKey:TeamLeadID"`
	MemberOfProjects []Project  `json:"memberOfProjects" gorm:"many2many:team_members;joinForeignKey:PersonID;joinReferences:ProjectID"`
	AssignedHardware []Hardware `json:"assignedHardware" gorm:"foreignKey:IssuedToID"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "persons"
}

package testutils

import (
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a test Person with default values
func (f *PersonFactory) Create() *models.Person {
	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jane Doe",
		Role: models.PersonRoleDeveloper,
	}
}

// WithName sets a custom name for the person
func (f *PersonFactory) WithName(name string) *models.Person {
	person := f.Create()
	person.Name = name
	return person
}

// WithRole sets a custom role for the person
func (f *PersonFactory) WithRole(role models.PersonRole) *models.Person {
	person := f.Create()
	person.Role = role
	return person
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values.
// The caller must supply the team lead since the column is non-nullable.
func (f *ProjectFactory) Create(teamLeadID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Project",
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     models.ProjectStatusUnderDevelopment,
		TeamLeadID: teamLeadID,
		ClientName: "Acme Corp",
		ToolStack:  "Go, PostgreSQL",
		Database:   "PostgreSQL",
		UsersCount: 10,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(teamLeadID uuid.UUID, name string) *models.Project {
	project := f.Create(teamLeadID)
	project.Name = name
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(teamLeadID uuid.UUID, status models.ProjectStatus) *models.Project {
	project := f.Create(teamLeadID)
	project.Status = status
	return project
}

// HardwareFactory provides methods to create test Hardware data
type HardwareFactory struct{}

// NewHardwareFactory creates a new HardwareFactory
func NewHardwareFactory() *HardwareFactory {
	return &HardwareFactory{}
}

// Create creates a test Hardware record with default values
func (f *HardwareFactory) Create() *models.Hardware {
	return &models.Hardware{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "ThinkPad X1",
		DateOfPurchase: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithIssuedTo assigns the hardware to a person
func (f *HardwareFactory) WithIssuedTo(personID uuid.UUID) *models.Hardware {
	hw := f.Create()
	hw.IssuedToID = &personID
	return hw
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values.
// The caller must supply the project since the column is non-nullable.
func (f *TaskFactory) Create(projectID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		Title:     "Implement feature",
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Status:    models.TaskStatusCreated,
	}
}

// WithAssignee assigns the task to a person
func (f *TaskFactory) WithAssignee(projectID, personID uuid.UUID) *models.Task {
	task := f.Create(projectID)
	task.PersonID = &personID
	return task
}

// AttachmentFactory provides methods to create test ProjectAttachment data
type AttachmentFactory struct{}

// NewAttachmentFactory creates a new AttachmentFactory
func NewAttachmentFactory() *AttachmentFactory {
	return &AttachmentFactory{}
}

// Create creates a test attachment descriptor for the given project
func (f *AttachmentFactory) Create(projectID uuid.UUID) *models.ProjectAttachment {
	fileType := "application/pdf"
	fileSize := int64(2048)
	return &models.ProjectAttachment{
		ID:        uuid.New(),
		FileName:  "spec-document.pdf",
		FileURL:   "/uploads/1700000000000-spec-document.pdf",
		FileType:  &fileType,
		FileSize:  &fileSize,
		ProjectID: projectID,
	}
}

// WithFileName sets a custom file name on the attachment
func (f *AttachmentFactory) WithFileName(projectID uuid.UUID, name string) *models.ProjectAttachment {
	att := f.Create(projectID)
	att.FileName = name
	return att
}

// FactorySet provides access to all factories
type FactorySet struct {
	Person     *PersonFactory
	Project    *ProjectFactory
	Hardware   *HardwareFactory
	Task       *TaskFactory
	Attachment *AttachmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Person:     &PersonFactory{},
		Project:    &ProjectFactory{},
		Hardware:   &HardwareFactory{},
		Task:       &TaskFactory{},
		Attachment: &AttachmentFactory{},
	}
}

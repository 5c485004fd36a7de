package service_test

import (
	"testing"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProjectRepo    *mocks.MockProjectRepositoryInterface
	mockPersonRepo     *mocks.MockPersonRepositoryInterface
	mockTeamMemberRepo *mocks.MockTeamMemberRepositoryInterface
	projectService     *service.ProjectService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockTeamMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.projectService = service.NewProjectService(
		suite.mockProjectRepo,
		suite.mockPersonRepo,
		suite.mockTeamMemberRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) validCreateRequest(leadID uuid.UUID) *service.CreateProjectRequest {
	return &service.CreateProjectRequest{
		Name:       "Inventory Portal",
		StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     "Under_Development",
		TeamLeadID: leadID,
		ClientName: "Operations",
	}
}

// TestCreateProject tests creating a project with members and attachments
func (suite *ProjectServiceTestSuite) TestCreateProject() {
	leadID := uuid.New()
	memberID := uuid.New()
	fileType := "application/pdf"

	req := suite.validCreateRequest(leadID)
	req.TeamMemberIDs = []uuid.UUID{memberID}
	req.Attachments = []service.AttachmentInput{
		{FileName: "spec.pdf", FileURL: "/uploads/1700000000000-spec.pdf", FileType: &fileType},
	}

	suite.mockPersonRepo.EXPECT().
		GetByID(leadID).
		Return(&models.Person{BaseModel: models.BaseModel{ID: leadID}}, nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		GetByIDs([]uuid.UUID{memberID}).
		Return([]models.Person{{BaseModel: models.BaseModel{ID: memberID}}}, nil).
		Times(1)

	var createdID uuid.UUID
	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			assert.Len(suite.T(), p.TeamMembers, 1)
			assert.Len(suite.T(), p.Attachments, 1)
			assert.Equal(suite.T(), "spec.pdf", p.Attachments[0].FileName)
			p.ID = uuid.New()
			createdID = p.ID
			return nil
		}).
		Times(1)
	suite.mockProjectRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Project, error) {
			assert.Equal(suite.T(), createdID, id)
			return &models.Project{
				BaseModel:  models.BaseModel{ID: id},
				Name:       "Inventory Portal",
				Status:     models.ProjectStatusUnderDevelopment,
				TeamLeadID: leadID,
			}, nil
		}).
		Times(1)

	project, err := suite.projectService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), project)
	assert.Equal(suite.T(), "Inventory Portal", project.Name)
	assert.NotNil(suite.T(), project.TeamMembers)
	assert.NotNil(suite.T(), project.Attachments)
}

// TestCreateProjectInvalidStatus tests that an unknown status is rejected before any write
func (suite *ProjectServiceTestSuite) TestCreateProjectInvalidStatus() {
	req := suite.validCreateRequest(uuid.New())
	req.Status = "Bogus_Status"

	project, err := suite.projectService.Create(req)

	assert.Nil(suite.T(), project)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidProjectStatus)
	assert.Equal(suite.T(), "Invalid project status", err.Error())
}

// TestCreateProjectDanglingTeamLead tests that a nonexistent team lead is rejected up front
func (suite *ProjectServiceTestSuite) TestCreateProjectDanglingTeamLead() {
	leadID := uuid.New()
	req := suite.validCreateRequest(leadID)

	suite.mockPersonRepo.EXPECT().
		GetByID(leadID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	project, err := suite.projectService.Create(req)

	assert.Nil(suite.T(), project)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestCreateProjectDanglingMember tests that a nonexistent member ID is rejected up front
func (suite *ProjectServiceTestSuite) TestCreateProjectDanglingMember() {
	leadID := uuid.New()
	knownID := uuid.New()
	missingID := uuid.New()

	req := suite.validCreateRequest(leadID)
	req.TeamMemberIDs = []uuid.UUID{knownID, missingID}

	suite.mockPersonRepo.EXPECT().
		GetByID(leadID).
		Return(&models.Person{BaseModel: models.BaseModel{ID: leadID}}, nil).
		Times(1)
	// Only one of the two IDs resolves
	suite.mockPersonRepo.EXPECT().
		GetByIDs([]uuid.UUID{knownID, missingID}).
		Return([]models.Person{{BaseModel: models.BaseModel{ID: knownID}}}, nil).
		Times(1)

	project, err := suite.projectService.Create(req)

	assert.Nil(suite.T(), project)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestUpdateProjectReplacesAttachmentSet tests that update swaps the attachment set wholesale
func (suite *ProjectServiceTestSuite) TestUpdateProjectReplacesAttachmentSet() {
	projectID := uuid.New()
	leadID := uuid.New()

	existing := &models.Project{
		BaseModel:  models.BaseModel{ID: projectID},
		Name:       "Inventory Portal",
		Status:     models.ProjectStatusUnderDevelopment,
		TeamLeadID: leadID,
	}

	req := &service.UpdateProjectRequest{
		Name:       "Inventory Portal",
		StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     "Deployed",
		TeamLeadID: leadID,
		Attachments: []service.AttachmentInput{
			{FileName: "handover.pdf", FileURL: "/uploads/1700000000001-handover.pdf"},
		},
	}

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(existing, nil).Times(1)
	suite.mockPersonRepo.EXPECT().
		GetByID(leadID).
		Return(&models.Person{BaseModel: models.BaseModel{ID: leadID}}, nil).
		Times(1)
	suite.mockProjectRepo.EXPECT().
		ReplaceAttachments(projectID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, attachments []models.ProjectAttachment) error {
			assert.Len(suite.T(), attachments, 1)
			assert.Equal(suite.T(), "handover.pdf", attachments[0].FileName)
			return nil
		}).
		Times(1)
	suite.mockProjectRepo.EXPECT().ReplaceMembers(existing, []models.Person{}).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			assert.Equal(suite.T(), models.ProjectStatusDeployed, p.Status)
			return nil
		}).
		Times(1)
	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(&models.Project{
			BaseModel:  models.BaseModel{ID: projectID},
			Name:       "Inventory Portal",
			Status:     models.ProjectStatusDeployed,
			TeamLeadID: leadID,
		}, nil).
		Times(1)

	project, err := suite.projectService.Update(projectID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProjectStatusDeployed, project.Status)
}

// TestUpdateProjectNotFound tests updating a missing project
func (suite *ProjectServiceTestSuite) TestUpdateProjectNotFound() {
	projectID := uuid.New()
	req := &service.UpdateProjectRequest{
		Name:       "Inventory Portal",
		StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:     "Deployed",
		TeamLeadID: uuid.New(),
	}

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	project, err := suite.projectService.Update(projectID, req)

	assert.Nil(suite.T(), project)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestReplaceTeamMembers tests the membership reconciliation path
func (suite *ProjectServiceTestSuite) TestReplaceTeamMembers() {
	projectID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	suite.mockTeamMemberRepo.EXPECT().ReplaceForProject(projectID, ids).Return(nil).Times(1)

	err := suite.projectService.ReplaceTeamMembers(projectID, ids)

	assert.NoError(suite.T(), err)
}

// TestReplaceTeamMembersEmptySet tests that an empty desired set clears membership
func (suite *ProjectServiceTestSuite) TestReplaceTeamMembersEmptySet() {
	projectID := uuid.New()

	suite.mockTeamMemberRepo.EXPECT().ReplaceForProject(projectID, []uuid.UUID{}).Return(nil).Times(1)

	err := suite.projectService.ReplaceTeamMembers(projectID, []uuid.UUID{})

	assert.NoError(suite.T(), err)
}

// TestDeleteProject tests deleting a project
func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(&models.Project{BaseModel: models.BaseModel{ID: projectID}}, nil).
		Times(1)
	suite.mockProjectRepo.EXPECT().Delete(projectID).Return(nil).Times(1)

	err := suite.projectService.Delete(projectID)

	assert.NoError(suite.T(), err)
}

// TestDeleteProjectNotFound tests deleting a missing project
func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.projectService.Delete(projectID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

package service_test

import (
	"testing"

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

// PersonServiceTestSuite defines the test suite for PersonService
type PersonServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	personService  *service.PersonService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *PersonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.personService = service.NewPersonService(suite.mockPersonRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *PersonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePerson tests creating a person
func (suite *PersonServiceTestSuite) TestCreatePerson() {
	req := &service.CreatePersonRequest{
		Name: "Jane Doe",
		Role: "Developer",
	}

	suite.mockPersonRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Person) error {
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Create re-reads the person so the response carries relation arrays
	suite.mockPersonRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Person, error) {
			return &models.Person{
				BaseModel: models.BaseModel{ID: id},
				Name:      req.Name,
				Role:      models.PersonRoleDeveloper,
			}, nil
		}).
		Times(1)

	person, err := suite.personService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), person)
	assert.Equal(suite.T(), "Jane Doe", person.Name)
	assert.Equal(suite.T(), models.PersonRoleDeveloper, person.Role)
	// Relation fields must serialize as arrays on a fresh record
	assert.NotNil(suite.T(), person.LeadingProjects)
	assert.NotNil(suite.T(), person.MemberOfProjects)
	assert.NotNil(suite.T(), person.AssignedHardware)
}

// TestCreatePersonInvalidRole tests that an unknown role is rejected before any write
func (suite *PersonServiceTestSuite) TestCreatePersonInvalidRole() {
	req := &service.CreatePersonRequest{
		Name: "Jane Doe",
		Role: "Wizard",
	}

	// No repository call expected
	person, err := suite.personService.Create(req)

	assert.Nil(suite.T(), person)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPersonRole)
	assert.Equal(suite.T(), "Invalid person role", err.Error())
}

// TestCreatePersonValidationError tests creating a person with a missing name
func (suite *PersonServiceTestSuite) TestCreatePersonValidationError() {
	req := &service.CreatePersonRequest{
		Name: "",
		Role: "Developer",
	}

	person, err := suite.personService.Create(req)

	assert.Nil(suite.T(), person)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetPersonByID tests retrieving a person
func (suite *PersonServiceTestSuite) TestGetPersonByID() {
	id := uuid.New()
	suite.mockPersonRepo.EXPECT().
		GetByID(id).
		Return(&models.Person{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Jane Doe",
			Role:      models.PersonRoleTeamLead,
		}, nil).
		Times(1)

	person, err := suite.personService.GetByID(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, person.ID)
	assert.NotNil(suite.T(), person.MemberOfProjects)
}

// TestGetPersonByIDNotFound tests retrieving a missing person
func (suite *PersonServiceTestSuite) TestGetPersonByIDNotFound() {
	id := uuid.New()
	suite.mockPersonRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	person, err := suite.personService.GetByID(id)

	assert.Nil(suite.T(), person)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestUpdatePersonInvalidRole tests that role validation runs before the existence check
func (suite *PersonServiceTestSuite) TestUpdatePersonInvalidRole() {
	req := &service.UpdatePersonRequest{
		Name: "Jane Doe",
		Role: "Manager",
	}

	person, err := suite.personService.Update(uuid.New(), req)

	assert.Nil(suite.T(), person)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPersonRole)
}

// TestUpdatePerson tests a full person update
func (suite *PersonServiceTestSuite) TestUpdatePerson() {
	id := uuid.New()
	existing := &models.Person{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Jane Doe",
		Role:      models.PersonRoleDeveloper,
	}

	req := &service.UpdatePersonRequest{
		Name: "Jane Smith",
		Role: "TeamLead",
	}

	suite.mockPersonRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockPersonRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(p *models.Person) error {
			assert.Equal(suite.T(), "Jane Smith", p.Name)
			assert.Equal(suite.T(), models.PersonRoleTeamLead, p.Role)
			return nil
		}).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		GetByID(id).
		Return(&models.Person{
			BaseModel: models.BaseModel{ID: id},
			Name:      "Jane Smith",
			Role:      models.PersonRoleTeamLead,
		}, nil).
		Times(1)

	person, err := suite.personService.Update(id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane Smith", person.Name)
	assert.Equal(suite.T(), models.PersonRoleTeamLead, person.Role)
}

// TestDeletePerson tests deleting a person
func (suite *PersonServiceTestSuite) TestDeletePerson() {
	id := uuid.New()
	suite.mockPersonRepo.EXPECT().
		GetByID(id).
		Return(&models.Person{BaseModel: models.BaseModel{ID: id}}, nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().Delete(id).Return(nil).Times(1)

	err := suite.personService.Delete(id)

	assert.NoError(suite.T(), err)
}

// TestDeletePersonNotFound tests deleting a missing person
func (suite *PersonServiceTestSuite) TestDeletePersonNotFound() {
	id := uuid.New()
	suite.mockPersonRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.personService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestPersonServiceTestSuite runs the test suite
func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}

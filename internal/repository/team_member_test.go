//go:build integration
// +build integration

package repository

import (
	"testing"

	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository against Postgres
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	personRepo    *PersonRepository
	projectRepo   *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.personRepo = NewPersonRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createProjectWithLead persists a lead person and a project they lead
func (suite *TeamMemberRepositoryTestSuite) createProjectWithLead() *models.Project {
	lead := suite.factories.Person.WithRole(models.PersonRoleTeamLead)
	suite.Require().NoError(suite.personRepo.Create(lead))

	project := suite.factories.Project.Create(lead.ID)
	suite.Require().NoError(suite.projectRepo.Create(project))
	return project
}

// createPersons persists n persons and returns their IDs
func (suite *TeamMemberRepositoryTestSuite) createPersons(n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		p := suite.factories.Person.Create()
		suite.Require().NoError(suite.personRepo.Create(p))
		ids = append(ids, p.ID)
	}
	return ids
}

// memberIDs reads the stored membership set for a project
func (suite *TeamMemberRepositoryTestSuite) memberIDs(projectID uuid.UUID) map[uuid.UUID]bool {
	rows, err := suite.repo.GetByProjectID(projectID)
	suite.Require().NoError(err)
	set := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		set[row.PersonID] = true
	}
	return set
}

// TestReplaceForProject tests that replace converges to the desired set from any prior state
func (suite *TeamMemberRepositoryTestSuite) TestReplaceForProject() {
	project := suite.createProjectWithLead()
	ids := suite.createPersons(3)

	// From empty to {a, b}
	err := suite.repo.ReplaceForProject(project.ID, []uuid.UUID{ids[0], ids[1]})
	suite.NoError(err)
	stored := suite.memberIDs(project.ID)
	suite.Len(stored, 2)
	suite.True(stored[ids[0]])
	suite.True(stored[ids[1]])

	// From {a, b} to {b, c}: a removed, c added, b kept
	err = suite.repo.ReplaceForProject(project.ID, []uuid.UUID{ids[1], ids[2]})
	suite.NoError(err)
	stored = suite.memberIDs(project.ID)
	suite.Len(stored, 2)
	suite.False(stored[ids[0]])
	suite.True(stored[ids[1]])
	suite.True(stored[ids[2]])
}

// TestReplaceForProjectIdempotent tests replaying the same desired set
func (suite *TeamMemberRepositoryTestSuite) TestReplaceForProjectIdempotent() {
	project := suite.createProjectWithLead()
	ids := suite.createPersons(2)

	suite.NoError(suite.repo.ReplaceForProject(project.ID, ids))
	suite.NoError(suite.repo.ReplaceForProject(project.ID, ids))

	stored := suite.memberIDs(project.ID)
	suite.Len(stored, 2)
}

// TestReplaceForProjectDeduplicates tests that duplicate IDs in the input yield one row
func (suite *TeamMemberRepositoryTestSuite) TestReplaceForProjectDeduplicates() {
	project := suite.createProjectWithLead()
	ids := suite.createPersons(1)

	err := suite.repo.ReplaceForProject(project.ID, []uuid.UUID{ids[0], ids[0], ids[0]})
	suite.NoError(err)

	rows, err := suite.repo.GetByProjectID(project.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(ids[0], rows[0].PersonID)
}

// TestReplaceForProjectEmptySet tests that an empty desired set clears membership
func (suite *TeamMemberRepositoryTestSuite) TestReplaceForProjectEmptySet() {
	project := suite.createProjectWithLead()
	ids := suite.createPersons(2)

	suite.NoError(suite.repo.ReplaceForProject(project.ID, ids))
	suite.NoError(suite.repo.ReplaceForProject(project.ID, nil))

	rows, err := suite.repo.GetByProjectID(project.ID)
	suite.NoError(err)
	suite.Empty(rows)
}

// TestReplaceForProjectScopedToProject tests that replacing one project's set leaves others alone
func (suite *TeamMemberRepositoryTestSuite) TestReplaceForProjectScopedToProject() {
	projectA := suite.createProjectWithLead()
	projectB := suite.createProjectWithLead()
	ids := suite.createPersons(2)

	suite.NoError(suite.repo.ReplaceForProject(projectA.ID, ids))
	suite.NoError(suite.repo.ReplaceForProject(projectB.ID, []uuid.UUID{ids[0]}))

	suite.NoError(suite.repo.ReplaceForProject(projectA.ID, nil))

	suite.Empty(suite.memberIDs(projectA.ID))
	storedB := suite.memberIDs(projectB.ID)
	suite.Len(storedB, 1)
	suite.True(storedB[ids[0]])
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"

	"estimating-portal-backend/internal/database/models"
	"estimating-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectVersionRepositoryTestSuite tests the ProjectVersionRepository
type ProjectVersionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectVersionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectVersionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectVersionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectVersionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectVersionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectVersionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByName tests round-tripping a version row
func (suite *ProjectVersionRepositoryTestSuite) TestCreateAndGetByName() {
	version := suite.factories.ProjectVersion.WithName("proj-v", "2026-01-15")
	suite.NoError(suite.repo.Create(version))

	retrieved, err := suite.repo.GetByName("proj-v", "2026-01-15")
	suite.NoError(err)
	suite.Equal(models.VersionStatusInProgress, retrieved.Status)
	suite.Equal(3, retrieved.ItemsCount)
}

// TestSetActiveClearsOthers tests the single-active rule
func (suite *ProjectVersionRepositoryTestSuite) TestSetActiveClearsOthers() {
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithActive("proj-v", "2026-01-15")))
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithName("proj-v", "2026-01-16")))
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithName("proj-v", "2026-01-16-v2")))

	suite.NoError(suite.repo.SetActive("proj-v", "2026-01-16"))

	versions, err := suite.repo.GetByProjectID("proj-v")
	suite.NoError(err)
	suite.Len(versions, 3)

	activeCount := 0
	for _, v := range versions {
		if v.Active {
			activeCount++
			suite.Equal("2026-01-16", v.SheetName)
		}
	}
	suite.Equal(1, activeCount)
}

// TestSetActiveScopedToProject tests that other projects keep their active flags
func (suite *ProjectVersionRepositoryTestSuite) TestSetActiveScopedToProject() {
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithActive("proj-a", "2026-01-15")))
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithName("proj-b", "2026-01-15")))

	suite.NoError(suite.repo.SetActive("proj-b", "2026-01-15"))

	other, err := suite.repo.GetByName("proj-a", "2026-01-15")
	suite.NoError(err)
	suite.True(other.Active)
}

// TestSetStatus tests updating the status label
func (suite *ProjectVersionRepositoryTestSuite) TestSetStatus() {
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithName("proj-v", "2026-01-15")))
	suite.NoError(suite.repo.SetStatus("proj-v", "2026-01-15", models.VersionStatusFinal))

	retrieved, err := suite.repo.GetByName("proj-v", "2026-01-15")
	suite.NoError(err)
	suite.Equal(models.VersionStatusFinal, retrieved.Status)
}

// TestUpsertByProjectAndName tests keyed replacement
func (suite *ProjectVersionRepositoryTestSuite) TestUpsertByProjectAndName() {
	version := suite.factories.ProjectVersion.WithName("proj-v", "2026-01-15")
	suite.NoError(suite.repo.Upsert(version))

	replacement := suite.factories.ProjectVersion.WithName("proj-v", "2026-01-15")
	replacement.ItemsCount = 9
	replacement.CopiedFrom = "2026-01-10"
	suite.NoError(suite.repo.Upsert(replacement))

	versions, err := suite.repo.GetByProjectID("proj-v")
	suite.NoError(err)
	suite.Len(versions, 1)
	suite.Equal(9, versions[0].ItemsCount)
	suite.Equal("2026-01-10", versions[0].CopiedFrom)
}

// TestDelete tests removing a version row
func (suite *ProjectVersionRepositoryTestSuite) TestDelete() {
	suite.NoError(suite.repo.Create(suite.factories.ProjectVersion.WithName("proj-v", "2026-01-15")))
	suite.NoError(suite.repo.Delete("proj-v", "2026-01-15"))

	_, err := suite.repo.GetByName("proj-v", "2026-01-15")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestProjectVersionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectVersionRepositoryTestSuite))
}

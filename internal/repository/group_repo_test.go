package repository_test

import (
	"context"
	"slices"
	"testing"

	"group-ledger/internal/domain"
	"group-ledger/internal/repository"
	"group-ledger/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type GroupRepositoryTestSuite struct {
	suite.Suite
	store *storage.Storage
	repo  domain.GroupRepository
	ctx   context.Context
}

func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = storage.New()
	suite.repo = repository.NewGroupRepository(suite.store)
}

func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *GroupRepositoryTestSuite) TestCreateGroup() {
	group, err := suite.repo.Create(suite.ctx, "trip")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "trip", group.Name)

	exists, err := suite.repo.ExistsGroup(suite.ctx, "trip")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)

	retrieved, err := suite.repo.GetByName(suite.ctx, "trip")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), group, retrieved)
}

func (suite *GroupRepositoryTestSuite) TestCreateGroup_Duplicate() {
	_, err := suite.repo.Create(suite.ctx, "g")
	assert.NoError(suite.T(), err)

	_, err = suite.repo.Create(suite.ctx, "g")
	assert.ErrorIs(suite.T(), err, domain.ErrGroupAlreadyExists)

	names := slices.Collect(suite.repo.GetAllNames(suite.ctx))
	assert.Equal(suite.T(), []string{"g"}, names)
}

func (suite *GroupRepositoryTestSuite) TestGetByName_NotFound() {
	group, err := suite.repo.GetByName(suite.ctx, "nonexistent")
	assert.ErrorIs(suite.T(), err, domain.ErrGroupNotFound)
	assert.Nil(suite.T(), group)
}

func (suite *GroupRepositoryTestSuite) TestGroupNamesAreCaseSensitive() {
	_, err := suite.repo.Create(suite.ctx, "Trip")
	assert.NoError(suite.T(), err)
	_, err = suite.repo.Create(suite.ctx, "trip")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), []string{"Trip", "trip"}, slices.Collect(suite.repo.GetAllNames(suite.ctx)))
}

func (suite *GroupRepositoryTestSuite) TestGetAllNames_StopsOnCancelledContext() {
	for _, name := range []string{"a", "b", "c"} {
		_, err := suite.repo.Create(suite.ctx, name)
		assert.NoError(suite.T(), err)
	}

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	assert.Empty(suite.T(), slices.Collect(suite.repo.GetAllNames(ctx)))
}

func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}

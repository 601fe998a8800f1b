// Package mocks содержит моки репозиториев на testify/mock для тестов use case'ов.
package mocks

import (
	"context"
	"iter"

	"group-ledger/internal/domain"

	"github.com/stretchr/testify/mock"
)

// GroupRepository - мок domain.GroupRepository.
type GroupRepository struct {
	mock.Mock
}

func (m *GroupRepository) Create(ctx context.Context, groupName string) (*domain.Group, error) {
	args := m.Called(ctx, groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupRepository) GetByName(ctx context.Context, groupName string) (*domain.Group, error) {
	args := m.Called(ctx, groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupRepository) ExistsGroup(ctx context.Context, groupName string) (bool, error) {
	args := m.Called(ctx, groupName)
	return args.Bool(0), args.Error(1)
}

func (m *GroupRepository) GetAllNames(ctx context.Context) iter.Seq[string] {
	args := m.Called(ctx)
	return args.Get(0).(iter.Seq[string])
}

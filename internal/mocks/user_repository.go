package mocks

import (
	"context"

	"group-ledger/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository - мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, groupName, userName string) (*domain.User, error) {
	args := m.Called(ctx, groupName, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, groupName, userName string) (int, error) {
	args := m.Called(ctx, groupName, userName)
	return args.Int(0), args.Error(1)
}

func (m *UserRepository) GetByName(ctx context.Context, groupName, userName string) (*domain.User, error) {
	args := m.Called(ctx, groupName, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetAllByGroup(ctx context.Context, groupName string) ([]*domain.User, error) {
	args := m.Called(ctx, groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserRepository) GetLowestBalance(ctx context.Context, groupName string) ([]*domain.User, error) {
	args := m.Called(ctx, groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserRepository) ApplyTransaction(ctx context.Context, groupName, userName string, amount float64) (*domain.User, error) {
	args := m.Called(ctx, groupName, userName, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

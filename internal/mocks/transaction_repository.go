package mocks

import (
	"context"

	"group-ledger/internal/domain"

	"github.com/stretchr/testify/mock"
)

// TransactionRepository - мок domain.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) GetRecent(ctx context.Context, groupName string, limit int) ([]*domain.Transaction, error) {
	args := m.Called(ctx, groupName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

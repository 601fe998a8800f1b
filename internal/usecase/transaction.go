package usecase

import (
	"context"
	"math"

	"group-ledger/internal/domain"
)

// TransactionUseCase реализует бизнес-логику для работы с транзакциями.
type TransactionUseCase struct {
	userRepo  domain.UserRepository
	txRepo    domain.TransactionRepository
	groupRepo domain.GroupRepository
}

// NewTransactionUseCase создает новый экземпляр TransactionUseCase.
func NewTransactionUseCase(userRepo domain.UserRepository, txRepo domain.TransactionRepository, groupRepo domain.GroupRepository) domain.TransactionUseCase {
	return &TransactionUseCase{
		userRepo:  userRepo,
		txRepo:    txRepo,
		groupRepo: groupRepo,
	}
}

// AddTransaction прибавляет сумму к балансу пользователя и записывает транзакцию.
func (uc *TransactionUseCase) AddTransaction(ctx context.Context, groupName, userName string, amount float64) (*domain.User, error) {
	// Отрицательные суммы допустимы, NaN и бесконечность - нет
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domain.ErrInvalidNumber
	}

	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return nil, err
	}

	return uc.userRepo.ApplyTransaction(ctx, groupName, userName, amount)
}

// RecentTransactions возвращает до limit последних транзакций группы, новые первыми.
func (uc *TransactionUseCase) RecentTransactions(ctx context.Context, groupName string, limit int) ([]*domain.Transaction, error) {
	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return nil, err
	}

	if limit <= 0 {
		return []*domain.Transaction{}, nil
	}

	return uc.txRepo.GetRecent(ctx, groupName, limit)
}

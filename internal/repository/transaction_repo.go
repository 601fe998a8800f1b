package repository

import (
	"context"
	"fmt"

	"group-ledger/internal/domain"
	"group-ledger/internal/storage"
)

// TransactionRepository реализует чтение журналов транзакций групп.
type TransactionRepository struct {
	store *storage.Storage
}

// NewTransactionRepository создает новый экземпляр TransactionRepository.
func NewTransactionRepository(store *storage.Storage) domain.TransactionRepository {
	return &TransactionRepository{
		store: store,
	}
}

// GetRecent возвращает до limit последних транзакций группы, новые первыми.
func (r *TransactionRepository) GetRecent(ctx context.Context, groupName string, limit int) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []storage.Entry
	err := r.store.View(groupName, func(_ *storage.UserRegistry, ledger *storage.Ledger) error {
		entries = ledger.Recent(limit)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	txs := make([]*domain.Transaction, 0, len(entries))
	for i, e := range entries {
		txs = append(txs, &domain.Transaction{
			Seq:       i + 1,
			GroupName: groupName,
			UserName:  e.UserName,
			Amount:    e.Amount,
		})
	}

	return txs, nil
}

package domain

import "context"

// Transaction представляет неизменяемую запись об изменении баланса.
type Transaction struct {
	// Seq - позиция в выборке последних транзакций, начиная с 1.
	Seq       int
	GroupName string
	UserName  string
	Amount    float64
}

// TransactionRepository определяет контракт для работы с журналом транзакций группы.
type TransactionRepository interface {
	GetRecent(ctx context.Context, groupName string, limit int) ([]*Transaction, error)
}

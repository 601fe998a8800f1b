package domain

import (
	"context"
	"iter"
)

// GroupUseCase определяет бизнес-логику для работы с группами.
type GroupUseCase interface {
	AddGroup(ctx context.Context, groupName string) (*Group, error)
	FindGroup(ctx context.Context, groupName string) (*Group, error)
	ListGroups(ctx context.Context) iter.Seq[string]
}

// UserUseCase определяет бизнес-логику для работы с участниками группы.
type UserUseCase interface {
	AddUser(ctx context.Context, groupName, userName string) (*User, error)
	RemoveUser(ctx context.Context, groupName, userName string) (int, error)
	ListUsers(ctx context.Context, groupName string) ([]*User, error)
	UserBalance(ctx context.Context, groupName, userName string) (float64, error)
	UnderPaid(ctx context.Context, groupName string) ([]*User, error)
}

// TransactionUseCase определяет бизнес-логику для работы с транзакциями.
type TransactionUseCase interface {
	AddTransaction(ctx context.Context, groupName, userName string, amount float64) (*User, error)
	RecentTransactions(ctx context.Context, groupName string, limit int) ([]*Transaction, error)
}

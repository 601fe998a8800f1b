package domain

import "context"

// User представляет участника группы с текущим балансом.
type User struct {
	Name      string
	GroupName string
	Balance   float64
}

// UserRepository определяет контракт для работы с реестром пользователей группы.
// Пользователи внутри группы всегда упорядочены по возрастанию баланса.
type UserRepository interface {
	Create(ctx context.Context, groupName, userName string) (*User, error)
	// Delete удаляет пользователя вместе со всеми его транзакциями
	// и возвращает число удалённых транзакций.
	Delete(ctx context.Context, groupName, userName string) (int, error)
	GetByName(ctx context.Context, groupName, userName string) (*User, error)
	GetAllByGroup(ctx context.Context, groupName string) ([]*User, error)
	GetLowestBalance(ctx context.Context, groupName string) ([]*User, error)
	// ApplyTransaction прибавляет сумму к балансу, восстанавливает порядок
	// реестра и записывает транзакцию в журнал группы.
	ApplyTransaction(ctx context.Context, groupName, userName string, amount float64) (*User, error)
}

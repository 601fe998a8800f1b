package repository

import (
	"context"
	"fmt"

	"group-ledger/internal/domain"
	"group-ledger/internal/storage"
)

// UserRepository реализует реестр пользователей групп в памяти процесса.
type UserRepository struct {
	store *storage.Storage
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(store *storage.Storage) domain.UserRepository {
	return &UserRepository{
		store: store,
	}
}

// Create добавляет пользователя с нулевым балансом.
func (r *UserRepository) Create(ctx context.Context, groupName, userName string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var member storage.Member
	err := r.store.Update(groupName, func(users *storage.UserRegistry, _ *storage.Ledger) error {
		var err error
		member, err = users.Add(userName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", userName, err)
	}

	return toDomainUser(groupName, member), nil
}

// Delete удаляет пользователя и все его транзакции одним шагом.
func (r *UserRepository) Delete(ctx context.Context, groupName, userName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var purged int
	err := r.store.Update(groupName, func(users *storage.UserRegistry, ledger *storage.Ledger) error {
		if err := users.Remove(userName); err != nil {
			return err
		}
		purged = ledger.RemoveByUser(userName)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %s: %w", userName, err)
	}

	return purged, nil
}

// GetByName возвращает пользователя группы по имени.
func (r *UserRepository) GetByName(ctx context.Context, groupName, userName string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var member storage.Member
	err := r.store.View(groupName, func(users *storage.UserRegistry, _ *storage.Ledger) error {
		var err error
		member, err = users.Get(userName)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userName, err)
	}

	return toDomainUser(groupName, member), nil
}

// GetAllByGroup возвращает пользователей группы по возрастанию баланса.
func (r *UserRepository) GetAllByGroup(ctx context.Context, groupName string) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var members []storage.Member
	err := r.store.View(groupName, func(users *storage.UserRegistry, _ *storage.Ledger) error {
		members = users.Members()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get group users: %w", err)
	}

	return toDomainUsers(groupName, members), nil
}

// GetLowestBalance возвращает всех пользователей с минимальным балансом.
func (r *UserRepository) GetLowestBalance(ctx context.Context, groupName string) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var members []storage.Member
	err := r.store.View(groupName, func(users *storage.UserRegistry, _ *storage.Ledger) error {
		var err error
		members, err = users.Lowest()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get lowest balance users: %w", err)
	}

	return toDomainUsers(groupName, members), nil
}

// ApplyTransaction меняет баланс пользователя и записывает транзакцию в журнал.
func (r *UserRepository) ApplyTransaction(ctx context.Context, groupName, userName string, amount float64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var member storage.Member
	err := r.store.Update(groupName, func(users *storage.UserRegistry, ledger *storage.Ledger) error {
		var err error
		member, err = users.Apply(userName, amount)
		if err != nil {
			return err
		}
		ledger.Record(userName, amount)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply transaction for %s: %w", userName, err)
	}

	return toDomainUser(groupName, member), nil
}

func toDomainUser(groupName string, m storage.Member) *domain.User {
	return &domain.User{
		Name:      m.Name,
		GroupName: groupName,
		Balance:   m.Balance,
	}
}

func toDomainUsers(groupName string, members []storage.Member) []*domain.User {
	users := make([]*domain.User, 0, len(members))
	for _, m := range members {
		users = append(users, toDomainUser(groupName, m))
	}
	return users
}

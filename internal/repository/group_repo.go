package repository

import (
	"context"
	"fmt"
	"iter"

	"group-ledger/internal/domain"
	"group-ledger/internal/storage"
)

// GroupRepository реализует хранение групп в памяти процесса.
type GroupRepository struct {
	store *storage.Storage
}

// NewGroupRepository создает новый экземпляр GroupRepository.
func NewGroupRepository(store *storage.Storage) domain.GroupRepository {
	return &GroupRepository{
		store: store,
	}
}

// Create создает пустую группу в конце списка.
func (r *GroupRepository) Create(ctx context.Context, groupName string) (*domain.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.store.CreateGroup(groupName); err != nil {
		return nil, fmt.Errorf("failed to create group %s: %w", groupName, err)
	}

	return &domain.Group{Name: groupName}, nil
}

// GetByName возвращает группу по названию.
func (r *GroupRepository) GetByName(ctx context.Context, groupName string) (*domain.Group, error) {
	exists, err := r.ExistsGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrGroupNotFound
	}

	return &domain.Group{Name: groupName}, nil
}

// ExistsGroup проверяет существование группы.
func (r *GroupRepository) ExistsGroup(ctx context.Context, groupName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.HasGroup(groupName), nil
}

// GetAllNames возвращает имена всех групп в порядке создания.
func (r *GroupRepository) GetAllNames(ctx context.Context) iter.Seq[string] {
	names := r.store.GroupNames()
	return func(yield func(string) bool) {
		for name := range names {
			if ctx.Err() != nil || !yield(name) {
				return
			}
		}
	}
}

package usecase

import (
	"context"
	"iter"

	"group-ledger/internal/domain"
)

// GroupUseCase реализует бизнес-логику для работы с группами.
type GroupUseCase struct {
	groupRepo domain.GroupRepository
}

// NewGroupUseCase создает новый экземпляр GroupUseCase.
func NewGroupUseCase(groupRepo domain.GroupRepository) domain.GroupUseCase {
	return &GroupUseCase{
		groupRepo: groupRepo,
	}
}

// AddGroup создает новую пустую группу.
func (uc *GroupUseCase) AddGroup(ctx context.Context, groupName string) (*domain.Group, error) {
	// Валидация
	if groupName == "" {
		return nil, domain.ErrInvalidGroupName
	}

	// Проверяем, что группа не существует
	exists, err := uc.groupRepo.ExistsGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrGroupAlreadyExists
	}

	return uc.groupRepo.Create(ctx, groupName)
}

// FindGroup возвращает группу по названию.
func (uc *GroupUseCase) FindGroup(ctx context.Context, groupName string) (*domain.Group, error) {
	exists, err := uc.groupRepo.ExistsGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrGroupNotFound
	}

	return uc.groupRepo.GetByName(ctx, groupName)
}

// ListGroups возвращает имена групп в порядке создания.
func (uc *GroupUseCase) ListGroups(ctx context.Context) iter.Seq[string] {
	return uc.groupRepo.GetAllNames(ctx)
}

// requireGroup возвращает ErrGroupNotFound, если группы нет.
func requireGroup(ctx context.Context, groupRepo domain.GroupRepository, groupName string) error {
	exists, err := groupRepo.ExistsGroup(ctx, groupName)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrGroupNotFound
	}
	return nil
}

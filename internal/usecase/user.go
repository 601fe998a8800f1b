package usecase

import (
	"context"

	"group-ledger/internal/domain"
)

// UserUseCase реализует бизнес-логику для работы с участниками групп.
type UserUseCase struct {
	userRepo  domain.UserRepository
	groupRepo domain.GroupRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, groupRepo domain.GroupRepository) domain.UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// AddUser добавляет в группу пользователя с нулевым балансом.
func (uc *UserUseCase) AddUser(ctx context.Context, groupName, userName string) (*domain.User, error) {
	// Валидация входных данных
	if groupName == "" {
		return nil, domain.ErrInvalidGroupName
	}
	if userName == "" {
		return nil, domain.ErrInvalidUserName
	}

	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return nil, err
	}

	return uc.userRepo.Create(ctx, groupName, userName)
}

// RemoveUser удаляет пользователя и все его транзакции.
// Возвращает число удалённых транзакций.
func (uc *UserUseCase) RemoveUser(ctx context.Context, groupName, userName string) (int, error) {
	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return 0, err
	}

	return uc.userRepo.Delete(ctx, groupName, userName)
}

// ListUsers возвращает пользователей группы по возрастанию баланса.
func (uc *UserUseCase) ListUsers(ctx context.Context, groupName string) ([]*domain.User, error) {
	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return nil, err
	}

	return uc.userRepo.GetAllByGroup(ctx, groupName)
}

// UserBalance возвращает текущий баланс пользователя.
func (uc *UserUseCase) UserBalance(ctx context.Context, groupName, userName string) (float64, error) {
	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return 0, err
	}

	user, err := uc.userRepo.GetByName(ctx, groupName, userName)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// UnderPaid возвращает всех пользователей с минимальным балансом в порядке реестра.
func (uc *UserUseCase) UnderPaid(ctx context.Context, groupName string) ([]*domain.User, error) {
	if err := requireGroup(ctx, uc.groupRepo, groupName); err != nil {
		return nil, err
	}

	return uc.userRepo.GetLowestBalance(ctx, groupName)
}

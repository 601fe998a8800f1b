package domain

import (
	"context"
	"iter"
)

// Group представляет группу с общим учётом расходов.
type Group struct {
	Name string
}

// GroupRepository определяет контракт для работы с хранилищем групп.
type GroupRepository interface {
	Create(ctx context.Context, groupName string) (*Group, error)
	GetByName(ctx context.Context, groupName string) (*Group, error)
	ExistsGroup(ctx context.Context, groupName string) (bool, error)
	// GetAllNames отдаёт имена групп в порядке создания.
	// Последовательность ленивая и может обходиться повторно.
	GetAllNames(ctx context.Context) iter.Seq[string]
}

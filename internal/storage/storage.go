// Package storage держит всё состояние учёта в памяти процесса.
package storage

import (
	"iter"
	"sync"

	"group-ledger/internal/domain"
)

type groupRecord struct {
	name   string
	users  *UserRegistry
	ledger *Ledger
}

// Storage владеет группами в порядке их создания. Каждая группа единолично
// владеет своим реестром пользователей и журналом транзакций.
//
// Все операции сериализуются одним мьютексом: составное изменение внутри
// Update видно остальным вызовам только целиком.
type Storage struct {
	mu     sync.RWMutex
	groups []*groupRecord
}

// New создает пустое хранилище.
func New() *Storage {
	return &Storage{}
}

func (s *Storage) find(groupName string) *groupRecord {
	for _, g := range s.groups {
		if g.name == groupName {
			return g
		}
	}
	return nil
}

// CreateGroup добавляет группу в конец списка.
func (s *Storage) CreateGroup(groupName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(groupName) != nil {
		return domain.ErrGroupAlreadyExists
	}

	s.groups = append(s.groups, &groupRecord{
		name:   groupName,
		users:  &UserRegistry{},
		ledger: &Ledger{},
	})
	return nil
}

// HasGroup проверяет существование группы.
func (s *Storage) HasGroup(groupName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(groupName) != nil
}

// GroupNames возвращает имена групп в порядке создания.
// Группы не удаляются, поэтому обход по индексу безопасен между шагами.
func (s *Storage) GroupNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; ; i++ {
			s.mu.RLock()
			if i >= len(s.groups) {
				s.mu.RUnlock()
				return
			}
			name := s.groups[i].name
			s.mu.RUnlock()

			if !yield(name) {
				return
			}
		}
	}
}

// View выполняет fn над группой под блокировкой чтения.
// fn не должна изменять реестр или журнал.
func (s *Storage) View(groupName string, fn func(users *UserRegistry, ledger *Ledger) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := s.find(groupName)
	if g == nil {
		return domain.ErrGroupNotFound
	}
	return fn(g.users, g.ledger)
}

// Update выполняет fn над группой под эксклюзивной блокировкой.
func (s *Storage) Update(groupName string, fn func(users *UserRegistry, ledger *Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.find(groupName)
	if g == nil {
		return domain.ErrGroupNotFound
	}
	return fn(g.users, g.ledger)
}

// Close освобождает все группы вместе с их реестрами и журналами.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = nil
	return nil
}

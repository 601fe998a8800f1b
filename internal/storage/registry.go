package storage

import (
	"math"
	"slices"
	"sort"

	"group-ledger/internal/domain"
)

// Member - запись реестра пользователей.
type Member struct {
	Name    string
	Balance float64
}

// UserRegistry хранит пользователей группы по возрастанию баланса.
// Пользователи с равным балансом сохраняют взаимный порядок,
// сложившийся до операции, которая уравняла их балансы.
type UserRegistry struct {
	members []Member
}

// Len возвращает число пользователей.
func (r *UserRegistry) Len() int {
	return len(r.members)
}

func (r *UserRegistry) indexOf(name string) int {
	return slices.IndexFunc(r.members, func(m Member) bool {
		return m.Name == name
	})
}

// Add добавляет пользователя с нулевым балансом перед первым пользователем
// с неотрицательным балансом: новичок встаёт в начало серии нулевых балансов.
func (r *UserRegistry) Add(name string) (Member, error) {
	if r.indexOf(name) >= 0 {
		return Member{}, domain.ErrUserAlreadyExists
	}

	m := Member{Name: name}
	pos := sort.Search(len(r.members), func(i int) bool {
		return r.members[i].Balance >= 0
	})
	r.members = slices.Insert(r.members, pos, m)
	return m, nil
}

// Remove удаляет пользователя из реестра.
func (r *UserRegistry) Remove(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	r.members = slices.Delete(r.members, i, i+1)
	return nil
}

// Get возвращает запись пользователя.
func (r *UserRegistry) Get(name string) (Member, error) {
	i := r.indexOf(name)
	if i < 0 {
		return Member{}, domain.ErrUserNotFound
	}
	return r.members[i], nil
}

// Apply прибавляет amount к балансу пользователя и переставляет только его.
// Баланс, ставший NaN или бесконечностью, отклоняется без изменений.
func (r *UserRegistry) Apply(name string, amount float64) (Member, error) {
	i := r.indexOf(name)
	if i < 0 {
		return Member{}, domain.ErrUserNotFound
	}

	balance := r.members[i].Balance + amount
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return Member{}, domain.ErrInvalidNumber
	}

	r.members[i].Balance = balance
	i = r.reposition(i)
	return r.members[i], nil
}

// reposition двигает запись i соседними перестановками, пока она больше
// следующей или меньше предыдущей. Остальной реестр уже упорядочен,
// поэтому одного прохода достаточно. Возвращает новую позицию.
func (r *UserRegistry) reposition(i int) int {
	for i+1 < len(r.members) && r.members[i].Balance > r.members[i+1].Balance {
		r.members[i], r.members[i+1] = r.members[i+1], r.members[i]
		i++
	}
	for i > 0 && r.members[i].Balance < r.members[i-1].Balance {
		r.members[i], r.members[i-1] = r.members[i-1], r.members[i]
		i--
	}
	return i
}

// Members возвращает копию реестра в порядке возрастания баланса.
func (r *UserRegistry) Members() []Member {
	return slices.Clone(r.members)
}

// Lowest возвращает всех пользователей с минимальным балансом в порядке реестра.
func (r *UserRegistry) Lowest() ([]Member, error) {
	if len(r.members) == 0 {
		return nil, domain.ErrEmptyGroup
	}

	n := 1
	for n < len(r.members) && r.members[n].Balance == r.members[0].Balance {
		n++
	}
	return slices.Clone(r.members[:n]), nil
}

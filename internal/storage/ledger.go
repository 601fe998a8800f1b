package storage

import "slices"

// Entry - запись журнала транзакций.
type Entry struct {
	UserName string
	Amount   float64
}

// Ledger хранит транзакции группы.
// Внутри записи лежат от старых к новым, наружу отдаются новыми вперёд.
type Ledger struct {
	entries []Entry
}

// Len возвращает число записей.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Record добавляет транзакцию как самую свежую.
func (l *Ledger) Record(userName string, amount float64) Entry {
	e := Entry{UserName: userName, Amount: amount}
	l.entries = append(l.entries, e)
	return e
}

// Recent возвращает не больше n последних транзакций, новые первыми.
// При n <= 0 или пустом журнале результат пуст.
func (l *Ledger) Recent(n int) []Entry {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}

	n = min(n, len(l.entries))
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// RemoveByUser удаляет все транзакции пользователя, сохраняя порядок остальных,
// и возвращает число удалённых записей.
func (l *Ledger) RemoveByUser(userName string) int {
	before := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e Entry) bool {
		return e.UserName == userName
	})
	return before - len(l.entries)
}

package storage

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"group-ledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_CreateGroup(t *testing.T) {
	s := New()

	require.NoError(t, s.CreateGroup("g"))
	assert.ErrorIs(t, s.CreateGroup("g"), domain.ErrGroupAlreadyExists)

	assert.Equal(t, []string{"g"}, slices.Collect(s.GroupNames()))
	assert.True(t, s.HasGroup("g"))
	assert.False(t, s.HasGroup("G"))
}

func TestStorage_GroupNames_CreationOrderAndRestartable(t *testing.T) {
	s := New()
	for _, name := range []string{"trip", "flat", "office"} {
		require.NoError(t, s.CreateGroup(name))
	}

	seq := s.GroupNames()
	assert.Equal(t, []string{"trip", "flat", "office"}, slices.Collect(seq))
	assert.Equal(t, []string{"trip", "flat", "office"}, slices.Collect(seq))

	// ранний выход из обхода
	var first string
	for name := range seq {
		first = name
		break
	}
	assert.Equal(t, "trip", first)
}

func TestStorage_ViewAndUpdate_UnknownGroup(t *testing.T) {
	s := New()
	noop := func(*UserRegistry, *Ledger) error { return nil }

	assert.ErrorIs(t, s.View("missing", noop), domain.ErrGroupNotFound)
	assert.ErrorIs(t, s.Update("missing", noop), domain.ErrGroupNotFound)
}

func TestStorage_GroupsOwnSeparateRegistries(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateGroup("a"))
	require.NoError(t, s.CreateGroup("b"))

	err := s.Update("a", func(users *UserRegistry, ledger *Ledger) error {
		_, err := users.Add("alice")
		ledger.Record("alice", 5)
		return err
	})
	require.NoError(t, err)

	err = s.View("b", func(users *UserRegistry, ledger *Ledger) error {
		assert.Zero(t, users.Len())
		assert.Zero(t, ledger.Len())
		return nil
	})
	require.NoError(t, err)
}

func TestStorage_UpdatePropagatesError(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateGroup("g"))

	boom := errors.New("boom")
	err := s.Update("g", func(*UserRegistry, *Ledger) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStorage_ConcurrentUpdatesAreSerialized(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateGroup("g"))
	require.NoError(t, s.Update("g", func(users *UserRegistry, _ *Ledger) error {
		_, err := users.Add("alice")
		return err
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update("g", func(users *UserRegistry, ledger *Ledger) error {
				if _, err := users.Apply("alice", 1); err != nil {
					return err
				}
				ledger.Record("alice", 1)
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.View("g", func(users *UserRegistry, ledger *Ledger) error {
		m, err := users.Get("alice")
		assert.Equal(t, 50.0, m.Balance)
		assert.Equal(t, 50, ledger.Len())
		return err
	}))
}

func TestStorage_Close(t *testing.T) {
	s := New()
	require.NoError(t, s.CreateGroup("g"))

	require.NoError(t, s.Close())

	assert.False(t, s.HasGroup("g"))
	assert.Empty(t, slices.Collect(s.GroupNames()))
}

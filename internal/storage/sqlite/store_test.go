package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "nested", "lifeboost.db"))
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadBeforeInit(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	assert.True(t, errors.Is(s.Load(), ErrNotInitialized))

	_, _, err := s.Get("userStats")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSetGetRemove(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.Get("waterHistory")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("waterHistory", `[{"date":"2026-01-02","goal":2,"intake":1}]`))
	require.NoError(t, s.Set("waterHistory", `[]`))

	v, found, err := s.Get("waterHistory")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Remove("waterHistory"))
	require.NoError(t, s.Remove("waterHistory"))
	_, found, err = s.Get("waterHistory")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReopenKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboost.db")
	s := NewStore(path)
	require.NoError(t, s.Init())
	require.NoError(t, s.Set("userName", "Ada"))
	require.NoError(t, s.Set("hydrationReminder", `{"active":true}`))
	require.NoError(t, s.Close())

	reopened := NewStore(path)
	require.NoError(t, reopened.Load())
	defer reopened.Close()

	v, found, err := reopened.Get("userName")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Ada", v)

	keys, err := reopened.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"hydrationReminder", "userName"}, keys)
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboost.db")
	first := NewStore(path)
	require.NoError(t, first.Init())
	require.NoError(t, first.Set("userName", "Ada"))
	require.NoError(t, first.Close())

	second := NewStore(path)
	require.NoError(t, second.Init())
	defer second.Close()

	v, _, err := second.Get("userName")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/twig/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(testutil.NewTestDB(t))
	require.NoError(t, err)

	clock := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestStore_AddListRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, err := s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	require.Equal(t, "alpha", a.Name)
	require.True(t, a.OpenedAt.IsZero())

	_, err = s.Add(ctx, "/src/beta")
	require.NoError(t, err)

	repos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	require.Equal(t, "alpha", repos[0].Name)

	require.NoError(t, s.Remove(ctx, "/src/alpha"))
	repos, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	require.Equal(t, "/src/beta", repos[0].Path)
}

func TestStore_AddTwiceKeepsOneEntry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	second, err := s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	repos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 1)
}

func TestStore_RemoveUnknown(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.Remove(context.Background(), "/nope"), ErrRepoNotFound)
}

func TestStore_MarkOpenedOrdersAndSetsCurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	_, err = s.Add(ctx, "/src/beta")
	require.NoError(t, err)

	current, err := s.Current(ctx)
	require.NoError(t, err)
	require.Empty(t, current)

	require.NoError(t, s.MarkOpened(ctx, "/src/beta"))

	current, err = s.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "/src/beta", current)

	repos, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "/src/beta", repos[0].Path)
	require.False(t, repos[0].OpenedAt.IsZero())
}

func TestStore_RemoveClearsCurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	require.NoError(t, s.MarkOpened(ctx, "/src/alpha"))

	require.NoError(t, s.Remove(ctx, "/src/alpha"))

	current, err := s.Current(ctx)
	require.NoError(t, err)
	require.Empty(t, current)
}

func TestStore_MarkOpenedUnknown(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.MarkOpened(context.Background(), "/nope"), ErrRepoNotFound)
}

func TestOpen_CreatesFileAndReopens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "repos.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Add(ctx, "/src/alpha")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	repos, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 1)
}

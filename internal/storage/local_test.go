package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "docs/plan.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "docs/plan.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "docs/plan.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	r, err := s.Get(ctx, "docs/plan.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Delete(ctx, "docs/plan.txt"))
	exists, err = s.Exists(ctx, "docs/plan.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "never-existed.txt"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()

	s := newTestLocalStorage(t)
	url, err := s.GetURL(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.png", url)

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	url, err = bare.GetURL(ctx, "a.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.png", url)
}

package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/public"})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "avatars/user1_123.jpg", strings.NewReader("image bytes"), "image/jpeg")
	require.NoError(t, err)

	reader, err := s.Get(ctx, "avatars/user1_123.jpg")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))

	size, err := s.GetSize(ctx, "avatars/user1_123.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(len("image bytes")), size)
}

func TestLocalStorage_SaveOverwrites(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a.txt", strings.NewReader("first"), "text/plain"))
	require.NoError(t, s.Save(ctx, "a.txt", strings.NewReader("second"), "text/plain"))

	reader, err := s.Get(ctx, "a.txt")
	require.NoError(t, err)
	defer reader.Close()

	content, _ := io.ReadAll(reader)
	assert.Equal(t, "second", string(content))
}

func TestLocalStorage_ExistsAndDelete(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "missing.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Save(ctx, "there.txt", strings.NewReader("x"), "text/plain"))

	exists, err = s.Exists(ctx, "there.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "there.txt"))

	exists, err = s.Exists(ctx, "there.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "there.txt"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "avatars/u_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/public/avatars/u_1.jpg", url)
}

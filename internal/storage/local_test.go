package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStoragePutGet(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "doc/raw.pdf", bytes.NewReader([]byte("pdf bytes"))))

	rc, err := s.Get(ctx, "doc/raw.pdf")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "pdf bytes", string(data))

	ok, err := s.Exists(ctx, "doc/raw.pdf")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Exists(ctx, "doc/missing.txt")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLocalStorageGetMissing(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "nope/ocr.txt")
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.LocalPath(context.Background(), "nope/ocr.txt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorageLocalPath(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "doc/ocr.txt", bytes.NewReader([]byte("텍스트"))))

	path, cleanup, err := s.LocalPath(ctx, "doc/ocr.txt")
	require.NoError(t, err)
	require.Nil(t, cleanup) // no temp copy for the local backend
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "텍스트", string(data))
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "/abs/path", "."} {
		err := s.Put(context.Background(), key, bytes.NewReader(nil))
		require.Error(t, err, "key %q must be rejected", key)
	}
}

func TestLocalStoragePutOverwrites(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "doc/ocr.txt", bytes.NewReader([]byte("first"))))
	require.NoError(t, s.Put(ctx, "doc/ocr.txt", bytes.NewReader([]byte("second"))))

	rc, err := s.Get(ctx, "doc/ocr.txt")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

package ingest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	t.Parallel()

	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}

// A burst of writes while the debounce window keeps resetting must not
// lose events or trip the race detector.
func TestWatcherDeliversBurstUnderDebounce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	const n = 120
	for i := 0; i < n; i++ {
		writeFile(t, dir, fmt.Sprintf("doc-%03d.pdf", i), []byte("pdf"))
	}

	seen := map[string]struct{}{}
	deadline := time.After(10 * time.Second)
	for len(seen) < n {
		select {
		case p, ok := <-events:
			require.True(t, ok, "event channel closed early")
			seen[p] = struct{}{}
		case werr := <-errs:
			t.Fatalf("watcher error: %v", werr)
		case <-deadline:
			t.Fatalf("saw %d of %d paths before timeout", len(seen), n)
		}
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	writeFile(t, dir, "notes.txt", []byte("text"))
	writeFile(t, dir, "book.pdf", []byte("pdf"))

	select {
	case p := <-events:
		require.Contains(t, p, "book.pdf")
	case <-time.After(10 * time.Second):
		t.Fatal("no event for book.pdf")
	}
}

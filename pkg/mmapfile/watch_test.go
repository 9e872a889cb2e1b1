package mmapfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Watch_ReportsModificationFromOutsideProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	events := make(chan ChangeEvent, 8)

	handle, err := mf.Watch(func(ev ChangeEvent) {
		events <- ev
	})
	require.NoError(t, err)
	defer handle.Close()

	time.Sleep(2 * pollInterval)
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(time.Hour)))

	select {
	case ev := <-events:
		require.Contains(t, []ChangeKind{ChangeModified, ChangeMetadata}, ev.Kind)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event")
	}
}

func Test_WatchHandle_Close_IsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.bin")

	mf, err := CreateReadWrite(path, 16)
	require.NoError(t, err)
	defer mf.Close()

	handle, err := mf.Watch(func(ChangeEvent) {})
	require.NoError(t, err)

	require.NoError(t, handle.Close())
	require.NoError(t, handle.Close())
}

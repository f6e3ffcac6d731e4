package draftport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/draftport"
)

const firstExport = `[
	{"content": "First note. body", "created_at": "2023-01-01T10:00:00Z", "modified_at": "2023-01-01T10:00:00Z"}
]`

const secondExport = `[
	{"content": "First note. body", "created_at": "2023-01-01T10:00:00Z", "modified_at": "2023-01-01T10:00:00Z"},
	{"content": "Second note. body", "created_at": "2023-01-02T10:00:00Z", "modified_at": "2023-01-02T10:00:00Z"}
]`

func waitForFile(t *testing.T, path string, deadline time.Time) {
	t.Helper()
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", path)
}

func TestWatchReconvertsOnExportChange(t *testing.T) {
	exportDir := t.TempDir()
	outDir := t.TempDir()
	export := filepath.Join(exportDir, "DraftsExport.json")
	require.NoError(t, os.WriteFile(export, []byte(firstExport), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- draftport.Watch(ctx,
			draftport.WithInput(export),
			draftport.WithOutputDir(outDir),
		)
	}()

	deadline := time.Now().Add(10 * time.Second)
	waitForFile(t, filepath.Join(outDir, "First note.md"), deadline)

	// Replace the export wholesale, the way exporters rewrite it. The
	// first note already exists on disk, so this also exercises the
	// implied overwrite of the reconversion.
	require.NoError(t, os.WriteFile(export, []byte(secondExport), 0o644))
	waitForFile(t, filepath.Join(outDir, "Second note.md"), deadline)

	data, err := os.ReadFile(filepath.Join(outDir, "First note.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "body")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchRequiresFileInput(t *testing.T) {
	err := draftport.Watch(context.Background(),
		draftport.WithReader(strings.NewReader(firstExport)),
		draftport.WithOutputDir(t.TempDir()),
	)
	require.Error(t, err)

	err = draftport.Watch(context.Background(),
		draftport.WithInput("-"),
		draftport.WithOutputDir(t.TempDir()),
	)
	require.Error(t, err)
}

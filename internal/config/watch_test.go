//go:build !js

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"surfview/internal/config"

	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surfview.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\ndefault_kind = \"Torus\"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kinds := make(chan string, 16)
	err := config.Watch(ctx, path, func(f *config.File, err error) {
		if err != nil {
			return
		}
		kinds <- f.Render.DefaultKind
	})
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[render]\ndefault_kind = \"Triforce\"\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case k := <-kinds:
			if k == "Triforce" {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := config.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "surfview.toml"), func(*config.File, error) {})
	require.Error(t, err)
}

// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_ReloadKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.yaml"), "service: {}\n")
	cfgPath := writeFile(t, filepath.Join(dir, "medialivegen.yaml"), "schema: schema.yaml\nworkers: 3\n")

	loader := NewLoader(cfgPath)
	initial, err := loader.Load()
	require.NoError(t, err)
	h := NewHolder(initial, loader)

	writeFile(t, cfgPath, "schema: schema.yaml\nworkers: 5\n")
	next, err := h.Reload()
	require.NoError(t, err)
	assert.Equal(t, 5, next.Workers)
	assert.Equal(t, 5, h.Get().Workers)

	writeFile(t, cfgPath, "schema: schema.yaml\nworkers: [oops]\n")
	_, err = h.Reload()
	require.Error(t, err)
	assert.Equal(t, 5, h.Get().Workers)
}

func TestHolder_WatcherReloadsOnSchemaChange(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, filepath.Join(dir, "schema.yaml"), "service: {}\n")
	cfgPath := writeFile(t, filepath.Join(dir, "medialivegen.yaml"), "schema: schema.yaml\ndebounce: 20ms\n")

	loader := NewLoader(cfgPath)
	initial, err := loader.Load()
	require.NoError(t, err)
	h := NewHolder(initial, loader)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	require.NoError(t, h.StartWatcher(ctx, func(_ context.Context, cfg Config) {
		changes <- cfg
	}))

	// Unrelated files in the same directory are ignored.
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")
	writeFile(t, schemaPath, "service: {name: medialive}\n")

	select {
	case cfg := <-changes:
		assert.Equal(t, schemaPath, cfg.Schema)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after schema change")
	}

	cancel()
	h.Wait()
}

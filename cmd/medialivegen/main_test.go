// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ManuGH/medialive-go/internal/config"
	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/ManuGH/medialive-go/internal/version"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func useTempOutput(t *testing.T) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "medialive")
	t.Setenv(config.EnvSchema, testutil.SchemaPath(t))
	t.Setenv(config.EnvOutputDir, out)
	t.Setenv(config.EnvOpenAPI, filepath.Join(t.TempDir(), "openapi.yaml"))
	return out
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}

func TestCheck(t *testing.T) {
	useTempOutput(t)
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Regexp(t, `^ok: \d+ shapes, \d+ enums, 1 operations\n$`, out)
}

func TestGenerate(t *testing.T) {
	dir := useTempOutput(t)

	out, err := run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, "12 written, 0 unchanged, 0 removed\n", out)
	assert.FileExists(t, filepath.Join(dir, "shapes_h265_gen.go"))

	out, err = run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, "0 written, 12 unchanged, 0 removed\n", out)

	out, err = run(t, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "up to date\n", out)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "enums_gen.go"), []byte("package medialive\n"), 0o600))
	_, err = run(t, "generate", "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enums_gen.go")
}

func TestOpenAPI(t *testing.T) {
	useTempOutput(t)

	out, err := run(t, "openapi", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi: 3.0.3")
	assert.Contains(t, out, "/prod/inputDevices/{inputDeviceId}")

	path := os.Getenv(config.EnvOpenAPI)
	out, err = run(t, "openapi")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)
	assert.FileExists(t, path)
}

func TestConfigErrors(t *testing.T) {
	useTempOutput(t)

	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "check")
	assert.Error(t, err)

	t.Setenv(config.EnvPackage, "not a package")
	_, err = run(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")
}

func TestWatch_GeneratesAndStops(t *testing.T) {
	dir := useTempOutput(t)

	loader := config.NewLoader("")
	cfg, err := loader.Load()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watch(ctx, loader, cfg) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "operations_gen.go"))
		return err == nil
	}, 10*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestCommandLogs(t *testing.T) {
	useTempOutput(t)
	t.Setenv(config.EnvLogLevel, "debug")
	log.Reset()
	t.Cleanup(func() {
		log.Reset()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(io.Discard)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"openapi"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	byComponent := map[string]map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if c, ok := entry[log.FieldComponent].(string); ok {
			byComponent[c] = entry
		}
	}

	tests := []struct {
		component string
		message   string
	}{
		{component: "cli", message: "configuration loaded"},
		{component: "openapi", message: "wrote OpenAPI document"},
	}
	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			entry, ok := byComponent[tt.component]
			require.True(t, ok, "no %s entry in %s", tt.component, stderr.String())
			assert.Equal(t, tt.message, entry["message"])
			assert.NotEmpty(t, entry[log.FieldRunID])
		})
	}
}

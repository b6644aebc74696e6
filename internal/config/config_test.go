// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ManuGH/medialive-go/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func tempSchema(t *testing.T) string {
	t.Helper()
	return writeFile(t, filepath.Join(t.TempDir(), "medialive.yaml"), "service: {name: medialive}\n")
}

func TestLoad_Defaults(t *testing.T) {
	schemaPath := tempSchema(t)
	t.Setenv(EnvSchema, schemaPath)

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	wantOut, err := filepath.Abs(DefaultOutputDir)
	require.NoError(t, err)

	assert.Equal(t, schemaPath, cfg.Schema)
	assert.Equal(t, wantOut, cfg.OutputDir)
	assert.Equal(t, DefaultPackage, cfg.Package)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_FileResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.yaml"), "service: {}\n")
	cfgPath := writeFile(t, filepath.Join(dir, "medialivegen.yaml"), `
schema: schema.yaml
outputDir: gen/medialive
openapi: /abs/openapi.yaml
package: mlive
workers: 8
debounce: 50ms
logLevel: debug
`)

	cfg, err := NewLoader(cfgPath).Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "schema.yaml"), cfg.Schema)
	assert.Equal(t, filepath.Join(dir, "gen", "medialive"), cfg.OutputDir)
	assert.Equal(t, "/abs/openapi.yaml", cfg.OpenAPIPath)
	assert.Equal(t, "mlive", cfg.Package)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schema.yaml"), "service: {}\n")
	cfgPath := writeFile(t, filepath.Join(dir, "medialivegen.yaml"), "schema: schema.yaml\nworkers: 8\ndebounce: 1s\n")

	t.Setenv(EnvWorkers, "2")
	t.Setenv(EnvDebounce, "not-a-duration")
	t.Setenv(EnvPackage, "other")

	l := NewLoader(cfgPath)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, time.Second, cfg.Debounce, "invalid env value falls back to the file value")
	assert.Equal(t, "other", cfg.Package)

	for _, key := range []string{EnvSchema, EnvOutputDir, EnvPackage, EnvOpenAPI, EnvWorkers, EnvDebounce, EnvLogLevel} {
		assert.Contains(t, l.ConsumedEnvKeys, key)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	schemaPath := tempSchema(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown key", "a.yaml", "schema: " + schemaPath + "\nworkerz: 3\n", "strict config parse error"},
		{"multiple documents", "b.yaml", "workers: 3\n---\nworkers: 4\n", "multiple documents"},
		{"bad debounce", "c.yaml", "schema: " + schemaPath + "\ndebounce: soon\n", "debounce"},
		{"not yaml", "d.json", "{}", "unsupported config format"},
		{"invalid values", "e.yaml", "schema: " + schemaPath + "\nworkers: 1000\n", "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.file), tt.content)
			_, err := NewLoader(path).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(dir, "missing.yaml")).Load()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Setenv(EnvSchema, schemaPath)
		path := writeFile(t, filepath.Join(dir, "empty.yaml"), "")
		cfg, err := NewLoader(path).Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultWorkers, cfg.Workers)
	})
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Validate(Config{Package: "1x", LogLevel: "loud"})
	require.Error(t, err)

	var ve validate.ValidationError
	require.True(t, errors.As(err, &ve))

	fields := map[string]bool{}
	for _, e := range ve.Errors() {
		fields[e.Field] = true
	}
	for _, want := range []string{"schema", "outputDir", "openapi", "package", "workers", "debounce", "logLevel"} {
		assert.True(t, fields[want], "missing error for %s: %v", want, err)
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{Schema: "s.yaml", OutputDir: "out", Package: "p", OpenAPIPath: "o.yaml", Workers: 2, Debounce: time.Second, LogLevel: "info"}
	assert.Equal(t, "schema=s.yaml out=out package=p openapi=o.yaml workers=2 debounce=1s log=info", cfg.String())
}

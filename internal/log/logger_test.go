// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Reset()
	Configure(cfg)
	t.Cleanup(func() {
		Reset()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return &buf
}

func TestWithComponent(t *testing.T) {
	buf := configureBuffer(t, Config{Service: "test-svc"})

	l := WithComponent("codegen")
	l.Info().Str(FieldShape, "H265Settings").Msg("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-svc", entry[FieldService])
	assert.Equal(t, "codegen", entry[FieldComponent])
	assert.Equal(t, "H265Settings", entry[FieldShape])
}

func TestConfigure_Level(t *testing.T) {
	buf := configureBuffer(t, Config{Level: "warn"})

	l := Base()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigure_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	_ = configureBuffer(t, Config{})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestConfigure_FirstCallWins(t *testing.T) {
	buf := configureBuffer(t, Config{Service: "first"})
	Configure(Config{Service: "second"})

	l := Base()
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"service":"first"`)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		build  func(*zerolog.Context)
		want   map[string]any
		absent []string
	}{
		{
			name:   "nil builder",
			ctx:    context.Background(),
			want:   map[string]any{"service": "medialivegen"},
			absent: []string{"custom_field", FieldRunID},
		},
		{
			name: "builder fields are kept",
			ctx:  context.Background(),
			build: func(c *zerolog.Context) {
				*c = c.Str("custom_field", "test_value")
			},
			want: map[string]any{"custom_field": "test_value"},
		},
		{
			name: "run id from context",
			ctx:  ContextWithRunID(context.Background(), "run-3"),
			build: func(c *zerolog.Context) {
				*c = c.Str(FieldFile, "enums_gen.go")
			},
			want: map[string]any{FieldRunID: "run-3", FieldFile: "enums_gen.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_SERVICE", "")
			buf := configureBuffer(t, Config{})

			l := Derive(tt.ctx, tt.build)
			l.Info().Msg("derived")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			for k, v := range tt.want {
				assert.Equal(t, v, entry[k], k)
			}
			for _, k := range tt.absent {
				assert.NotContains(t, entry, k)
			}
		})
	}
}

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

func TestContextWithRunID(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		runID string
		want  string
	}{
		{name: "nil context", ctx: nil, runID: "run-1", want: "run-1"},
		{name: "background context", ctx: context.Background(), runID: "run-2", want: "run-2"},
		{name: "empty run ID", ctx: context.Background(), runID: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithRunID(tt.ctx, tt.runID) //nolint:staticcheck // nil ctx is part of the contract
			assert.Equal(t, tt.want, RunIDFromContext(ctx))
		})
	}
}

func TestRunIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), runIDKey{}, 123)
	assert.Empty(t, RunIDFromContext(ctx))
	assert.Empty(t, RunIDFromContext(nil)) //nolint:staticcheck
}

func TestWithContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRunID(context.Background(), "run-42")
	l := WithContext(ctx, base)
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-42", entry[FieldRunID])
}

func TestWithContext_NoFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithContext(context.Background(), base)
	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry[FieldRunID]
	assert.False(t, ok)
}

func TestFromContext_FallsBackToBase(t *testing.T) {
	l := FromContext(context.Background())
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())

	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("k", "v").Logger()
	ctx := attached.WithContext(context.Background())
	got := FromContext(ctx)
	got.Info().Msg("attached")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestWithComponentFromContext(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf)
	ctx := ContextWithRunID(attached.WithContext(context.Background()), "run-7")

	l := WithComponentFromContext(ctx, "codegen")
	l.Info().Msg("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "codegen", entry[FieldComponent])
	assert.Equal(t, "run-7", entry[FieldRunID])
}

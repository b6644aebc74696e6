// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		wantErr bool
	}{
		{"within range", 5, 1, 10, false},
		{"at min", 1, 1, 10, false},
		{"at max", 10, 1, 10, false},
		{"below min", 0, 1, 10, true},
		{"above max", 11, 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Range("testRange", tt.value, tt.min, tt.max)
			assert.Equal(t, tt.wantErr, !v.IsValid(), "errors: %v", v.Err())
		})
	}
}

func TestValidator_NotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "medialive", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.NotEmpty("field", tt.value)
			assert.Equal(t, tt.wantErr, !v.IsValid())
		})
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := New()
	v.OneOf("method", "GET", []string{"GET", "PUT"})
	assert.True(t, v.IsValid())

	v.OneOf("method", "PATCHY", []string{"GET", "PUT"})
	require.False(t, v.IsValid())
	assert.Contains(t, v.Errors()[0].Message, `"PATCHY"`)
}

func TestValidator_Identifier(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"medialive", false},
		{"_x1", false},
		{"1abc", true},
		{"func", true},
		{"with-dash", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := New()
			v.Identifier("package", tt.value)
			assert.Equal(t, tt.wantErr, !v.IsValid())
		})
	}
}

func TestValidator_Unique(t *testing.T) {
	v := New()
	seen := map[string]struct{}{}
	v.Unique("shapes[0].name", "H264Settings", seen)
	v.Unique("shapes[1].name", "H265Settings", seen)
	assert.True(t, v.IsValid())

	v.Unique("shapes[2].name", "H264Settings", seen)
	require.Len(t, v.Errors(), 1)
	assert.Equal(t, "shapes[2].name", v.Errors()[0].Field)
}

func TestValidator_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(file, []byte("service: {}\n"), 0o600))

	v := New()
	v.File("schema", file)
	assert.True(t, v.IsValid())

	v.File("schema", dir)
	v.File("schema", filepath.Join(dir, "missing.yaml"))
	v.File("schema", "")
	assert.Len(t, v.Errors(), 3)
}

func TestValidator_Custom(t *testing.T) {
	v := New()
	v.Custom("x", 3, func(any) error { return nil })
	assert.True(t, v.IsValid())

	v.Custom("x", 3, func(any) error { return errors.New("odd") })
	require.Len(t, v.Errors(), 1)
	assert.Equal(t, "odd", v.Errors()[0].Message)
}

func TestValidationError_Format(t *testing.T) {
	v := New()
	assert.NoError(t, v.Err())

	v.AddError("a", "first", nil)
	assert.Equal(t, "validation failed for a: first", v.Err().Error())

	v.AddError("b", "second", nil)
	err := v.Err()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "; "))

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors(), 2)

	// The returned error owns a copy of the accumulated errors.
	v.AddError("c", "third", nil)
	assert.Len(t, ve.Errors(), 2)
}

func TestParseLogLevel(t *testing.T) {
	for _, l := range LogLevels() {
		got, err := ParseLogLevel(l)
		require.NoError(t, err)
		assert.Equal(t, l, got.String())
	}

	for _, bad := range []string{"", "verbose", "fatal", "disabled"} {
		_, err := ParseLogLevel(bad)
		assert.ErrorIs(t, err, ErrInvalidLogLevel, bad)
	}
}

func TestValidator_ZeroValue(t *testing.T) {
	var v Validator
	assert.True(t, v.IsValid())
	v.NotEmpty("name", "")
	assert.EqualError(t, v.Err(), "validation failed for name: value cannot be empty")
}

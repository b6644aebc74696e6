// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	const key = "MEDIALIVEGEN_TEST_VALUE"

	t.Run("unset uses default", func(t *testing.T) {
		assert.Equal(t, "d", ParseString(key, "d"))
		assert.Equal(t, 3, ParseInt(key, 3))
		assert.Equal(t, time.Second, ParseDuration(key, time.Second))
	})

	t.Run("empty uses default", func(t *testing.T) {
		t.Setenv(key, "")
		assert.Equal(t, "d", ParseString(key, "d"))
	})

	t.Run("valid values", func(t *testing.T) {
		t.Setenv(key, "42")
		assert.Equal(t, "42", ParseString(key, "d"))
		assert.Equal(t, 42, ParseInt(key, 3))

		t.Setenv(key, "250ms")
		assert.Equal(t, 250*time.Millisecond, ParseDuration(key, time.Second))
	})

	t.Run("malformed falls back", func(t *testing.T) {
		t.Setenv(key, "many")
		assert.Equal(t, 3, ParseInt(key, 3))
		assert.Equal(t, time.Second, ParseDuration(key, time.Second))
	})
}

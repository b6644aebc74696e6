// SPDX-License-Identifier: MIT

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRoot(t *testing.T) {
	r, err := RepoRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(r, "go.mod"))

	again, err := RepoRoot()
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

func TestSchemaPath(t *testing.T) {
	p := SchemaPath(t)
	assert.Equal(t, "medialive.yaml", filepath.Base(p))
	_, err := os.Stat(p)
	require.NoError(t, err)
}

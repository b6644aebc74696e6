// SPDX-License-Identifier: MIT

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })

	Version, Commit, Date = "v1.2.3", "unknown", "unknown"
	assert.Equal(t, "v1.2.3", String())

	Commit, Date = "abc1234", "2026-01-02"
	assert.Equal(t, "v1.2.3 (commit abc1234, built 2026-01-02)", String())
}

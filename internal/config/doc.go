// SPDX-License-Identifier: MIT

// Package config loads the medialivegen configuration.
//
// Precedence is environment over file over defaults. The file is YAML and
// parsed strictly: unknown keys are errors. Relative paths in the file are
// resolved against the directory holding the file; relative paths from the
// environment or the defaults are resolved against the working directory.
package config

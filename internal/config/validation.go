// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/ManuGH/medialive-go/internal/validate"
)

const maxWorkers = 64

// Validate checks a loaded configuration and reports every problem at once.
func Validate(cfg Config) error {
	v := validate.New()

	v.File("schema", cfg.Schema)
	v.NotEmpty("outputDir", cfg.OutputDir)
	v.NotEmpty("openapi", cfg.OpenAPIPath)
	v.Identifier("package", cfg.Package)
	v.Range("workers", cfg.Workers, 1, maxWorkers)
	if cfg.Debounce < 10*time.Millisecond {
		v.AddError("debounce", "must be at least 10ms", cfg.Debounce)
	}
	v.Custom("logLevel", cfg.LogLevel, func(val any) error {
		_, err := validate.ParseLogLevel(val.(string))
		return err
	})

	return v.Err()
}

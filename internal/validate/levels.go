// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidLogLevel is wrapped by ParseLogLevel failures.
var ErrInvalidLogLevel = errors.New("invalid log level")

var logLevels = []zerolog.Level{
	zerolog.TraceLevel,
	zerolog.DebugLevel,
	zerolog.InfoLevel,
	zerolog.WarnLevel,
	zerolog.ErrorLevel,
}

// LogLevels lists the accepted level names in increasing severity.
func LogLevels() []string {
	names := make([]string, len(logLevels))
	for i, l := range logLevels {
		names[i] = l.String()
	}
	return names
}

// ParseLogLevel accepts the level names the generator can be configured
// with. zerolog's fatal, panic and disabled levels are rejected.
func ParseLogLevel(s string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(s)
	if err == nil && s != "" {
		for _, ok := range logLevels {
			if l == ok {
				return l, nil
			}
		}
	}
	return zerolog.NoLevel, fmt.Errorf("%w %q (must be one of %s)", ErrInvalidLogLevel, s, strings.Join(LogLevels(), ", "))
}

// SPDX-License-Identifier: MIT

// validate checks medialive JSON payloads and medialivegen configuration
// files.
//
// Usage:
//
//	validate -f medialivegen.yaml
//	validate -shape H265Settings -f settings.json
//	validate -schema api/medialive.yaml -shape HlsGroupSettings -f hls.json
//
// Exit codes:
//   - 0: the file is valid
//   - 1: the file is invalid (parse or validation error)
//   - 2: usage error
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ManuGH/medialive-go/internal/config"
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/ManuGH/medialive-go/internal/version"
	"github.com/getkin/kin-openapi/openapi3"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file, shape, schemaPath string
	var showVersion bool
	fs.StringVar(&file, "file", "", "path to the file to validate")
	fs.StringVar(&file, "f", "", "path to the file to validate (shorthand)")
	fs.StringVar(&shape, "shape", "", "validate a JSON payload as this shape instead of a config file")
	fs.StringVar(&schemaPath, "schema", config.DefaultSchema, "schema describing the shapes")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if file == "" {
		fmt.Fprintln(stderr, "Error: --file is required")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  validate -f medialivegen.yaml")
		fmt.Fprintln(stderr, "  validate -shape H265Settings -f settings.json")
		return 2
	}

	var err error
	if shape == "" {
		// Same strict load and validation as medialivegen, env overrides included.
		_, err = config.NewLoader(file).Load()
	} else {
		err = validatePayload(schemaPath, shape, file)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Validation error in %s:\n", file)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(stderr, "  %s\n", line)
		}
		return 1
	}

	fmt.Fprintf(stdout, "✓ %s is valid\n", file)
	return 0
}

func validatePayload(schemaPath, shape, file string) error {
	s, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	if _, err := s.Shape(shape); err != nil {
		return err
	}
	doc, err := s.OpenAPI()
	if err != nil {
		return err
	}
	sch := doc.Components.Schemas[shape].Value

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if dec.More() {
		return fmt.Errorf("parse %s: trailing data after JSON value", file)
	}

	problems := unknownMembers(sch, payload, shape)
	if err := sch.VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		var me openapi3.MultiError
		if errors.As(err, &me) {
			for _, e := range me {
				problems = append(problems, e.Error())
			}
		} else {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "\n"))
	}
	return nil
}

// unknownMembers reports object keys the schema does not declare. The
// exported components leave objects open, so this is the strict half.
func unknownMembers(sch *openapi3.Schema, v any, path string) []string {
	if sch == nil {
		return nil
	}
	switch val := v.(type) {
	case map[string]any:
		if !sch.Type.Is(openapi3.TypeObject) {
			return nil
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out []string
		for _, k := range keys {
			prop, ok := sch.Properties[k]
			if !ok {
				out = append(out, fmt.Sprintf("%s.%s: unknown member", path, k))
				continue
			}
			out = append(out, unknownMembers(prop.Value, val[k], path+"."+k)...)
		}
		return out
	case []any:
		if sch.Items == nil {
			return nil
		}
		var out []string
		for i, item := range val {
			out = append(out, unknownMembers(sch.Items.Value, item, fmt.Sprintf("%s[%d]", path, i))...)
		}
		return out
	}
	return nil
}

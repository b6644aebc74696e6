// SPDX-License-Identifier: MIT

// schema-docs generates a Markdown reference of the medialive shapes and
// enums from the schema file.
//
// Usage:
//
//	go run ./tools/schema-docs [schema.yaml] [output.md]
//
// Defaults:
//   - input: api/medialive.yaml
//   - output: docs/medialive.md
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/medialive-go/internal/codegen"
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/google/renameio/v2"
)

func main() {
	in := "api/medialive.yaml"
	out := "docs/medialive.md"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		out = os.Args[2]
	}

	s, err := schema.Load(in)
	check(err)
	check(s.Check())

	check(os.MkdirAll(filepath.Dir(out), 0o755))
	check(renameio.WriteFile(out, render(s, in), 0o644))
	fmt.Printf("generated %s from %s\n", out, in)
}

func render(s *schema.Schema, source string) []byte {
	buf := &bytes.Buffer{}
	title := s.Service.Title
	if title == "" {
		title = s.Service.Name
	}
	fmt.Fprintf(buf, "# %s reference\n\n", title)
	fmt.Fprintf(buf, "> Source: `%s` (API version %s)\n\n", filepath.ToSlash(source), s.Service.APIVersion)

	if len(s.Operations) > 0 {
		fmt.Fprintln(buf, "## Operations")
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "| Operation | Method | Path | Input | Output |")
		fmt.Fprintln(buf, "|---|---|---|---|---|")
		for _, op := range s.Operations {
			fmt.Fprintf(buf, "| `%s` | %s | `%s` | %s | %s |\n",
				op.Name, op.Method, op.Path, shapeLink(op.Input), shapeLink(op.Output))
		}
		fmt.Fprintln(buf)
	}

	for _, file := range s.Files() {
		fmt.Fprintf(buf, "## Shapes: %s\n\n", file)
		for _, sh := range s.ShapesInFile(file) {
			renderShape(buf, sh)
		}
	}

	fmt.Fprintln(buf, "## Enums")
	fmt.Fprintln(buf)
	for _, e := range s.Enums {
		fmt.Fprintf(buf, "### %s\n\n", e.Name)
		if e.Doc != "" {
			fmt.Fprintf(buf, "%s\n\n", mdSan(e.Doc))
		}
		fmt.Fprintf(buf, "**Values:** %s\n\n", strings.Join(wrapBackticks(e.Values), ", "))
	}
	return buf.Bytes()
}

func renderShape(buf *bytes.Buffer, sh *schema.Shape) {
	fmt.Fprintf(buf, "### %s\n\n", sh.Name)
	if sh.Doc != "" {
		fmt.Fprintf(buf, "%s\n\n", mdSan(sh.Doc))
	}
	if len(sh.Members) == 0 {
		fmt.Fprintln(buf, "_No members._")
		fmt.Fprintln(buf)
		return
	}

	fmt.Fprintln(buf, "| Field | Wire name | Go type | Required | Constraints | Description |")
	fmt.Fprintln(buf, "|---|---|---|:---:|---|---|")
	for _, m := range sh.Members {
		wire := "`" + m.Name + "`"
		if m.Location == schema.LocationURI {
			wire += " (uri)"
		}
		fmt.Fprintf(buf, "| `%s` | %s | %s | %s | %s | %s |\n",
			schema.ExportName(m.Name), wire, typeLink(m), boolIcon(m.Required),
			mdSan(codegen.ConstraintText(m)), mdSan(m.Doc))
	}
	fmt.Fprintln(buf)
}

func typeLink(m schema.Member) string {
	goType := "`" + codegen.GoType(m) + "`"
	ref := m.Ref
	if m.Items != nil {
		ref = m.Items.Ref
	}
	if ref == "" {
		return goType
	}
	return fmt.Sprintf("[%s](#%s)", goType, anchor(ref))
}

func shapeLink(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("[%s](#%s)", name, anchor(name))
}

// anchor follows the GitHub heading slug rules for plain identifiers.
func anchor(name string) string {
	return strings.ToLower(name)
}

func mdSan(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.TrimSpace(s)
}

func wrapBackticks(v []string) []string {
	out := make([]string, len(v))
	for i, s := range v {
		out[i] = "`" + s + "`"
	}
	return out
}

func boolIcon(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

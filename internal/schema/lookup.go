// SPDX-License-Identifier: MIT

package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lookup errors.
var (
	ErrUnknownShape     = errors.New("schema: unknown shape")
	ErrUnknownEnum      = errors.New("schema: unknown enum")
	ErrUnknownOperation = errors.New("schema: unknown operation")
)

// Shape returns the shape called name.
func (s *Schema) Shape(name string) (*Shape, error) {
	if s.shapeIndex == nil {
		s.reindex()
	}
	i, ok := s.shapeIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
	return &s.Shapes[i], nil
}

// Enum returns the enum called name.
func (s *Schema) Enum(name string) (*Enum, error) {
	if s.enumIndex == nil {
		s.reindex()
	}
	i, ok := s.enumIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnum, name)
	}
	return &s.Enums[i], nil
}

// Operation returns the operation called name.
func (s *Schema) Operation(name string) (*Operation, error) {
	for i := range s.Operations {
		if s.Operations[i].Name == name {
			return &s.Operations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
}

// Files returns the shape group names in order of first appearance.
func (s *Schema) Files() []string {
	var files []string
	seen := map[string]bool{}
	for _, sh := range s.Shapes {
		if !seen[sh.File] {
			seen[sh.File] = true
			files = append(files, sh.File)
		}
	}
	return files
}

// ShapesInFile returns the shapes of one group in declared order.
func (s *Schema) ShapesInFile(file string) []*Shape {
	var out []*Shape
	for i := range s.Shapes {
		if s.Shapes[i].File == file {
			out = append(out, &s.Shapes[i])
		}
	}
	return out
}

// NeedsValidation reports whether the named shape, or anything reachable
// from it, carries a required member, a positive minimum or a minimum length.
func (s *Schema) NeedsValidation(name string) bool {
	return s.needsValidation(name, map[string]bool{})
}

func (s *Schema) needsValidation(name string, visiting map[string]bool) bool {
	if visiting[name] {
		return false
	}
	visiting[name] = true
	defer delete(visiting, name)

	sh, err := s.Shape(name)
	if err != nil {
		return false
	}
	for _, m := range sh.Members {
		if m.HasConstraint() {
			return true
		}
		if ref := m.ShapeRef(); ref != "" && s.needsValidation(ref, visiting) {
			return true
		}
	}
	return false
}

// HasConstraint reports whether the member itself is checked by Validate.
func (m Member) HasConstraint() bool {
	return m.Required || m.MinValue() > 0 || m.MinLen() > 0
}

// MinValue returns the lower bound checked by Validate, or zero.
func (m Member) MinValue() float64 {
	if m.Min == nil || !m.Type.IsNumeric() {
		return 0
	}
	return *m.Min
}

// MinLen returns the minimum length checked by Validate, or zero.
func (m Member) MinLen() int {
	if m.MinLength == nil || (m.Type != TypeString && m.Type != TypeList) {
		return 0
	}
	return *m.MinLength
}

// ShapeRef returns the nested shape of a structure member or of a list of
// structures, and "" otherwise.
func (m Member) ShapeRef() string {
	switch {
	case m.Type == TypeStructure:
		return m.Ref
	case m.Type == TypeList && m.Items != nil && m.Items.Type == TypeStructure:
		return m.Items.Ref
	}
	return ""
}

// ExportName converts a wire name to the exported Go field name by
// upper-casing its first letter.
func ExportName(wire string) string {
	r, size := utf8.DecodeRuneInString(wire)
	if r == utf8.RuneError {
		return wire
	}
	return string(unicode.ToUpper(r)) + wire[size:]
}

// EnumConstName returns the Go constant for one enum value: the enum name
// followed by each word of the value, lower-cased with a leading capital.
//
//	("H264Level", "H264_LEVEL_1_1") -> "H264LevelH264Level11"
//	("H264Profile", "HIGH_10BIT")   -> "H264ProfileHigh10bit"
func EnumConstName(enum, value string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	b.WriteString(enum)
	words := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		b.WriteString(ExportName(lower.String(w)))
	}
	return b.String()
}

// SPDX-License-Identifier: MIT

package codegen

import (
	"strconv"
	"strings"

	"github.com/ManuGH/medialive-go/internal/schema"
)

const commentWidth = 76

// GoType returns the Go type of a member as declared on the struct.
func GoType(m schema.Member) string {
	switch m.Type {
	case schema.TypeString:
		return "*string"
	case schema.TypeInteger:
		return "*int64"
	case schema.TypeDouble:
		return "*float64"
	case schema.TypeBoolean:
		return "*bool"
	case schema.TypeEnum:
		return m.Ref
	case schema.TypeStructure:
		return "*" + m.Ref
	case schema.TypeList:
		return "[]" + elemType(m.Items)
	}
	return "interface{}"
}

func elemType(it *schema.Items) string {
	switch it.Type {
	case schema.TypeEnum:
		return it.Ref
	case schema.TypeStructure:
		return "*" + it.Ref
	default:
		return GoType(schema.Member{Type: it.Type})
	}
}

// setterType is the parameter type of SetX: scalars are taken by value.
func setterType(m schema.Member) string {
	if m.Type.IsScalar() {
		return strings.TrimPrefix(GoType(m), "*")
	}
	return GoType(m)
}

// valueFunc names the aws helper that dereferences a scalar pointer.
func valueFunc(m schema.Member) string {
	switch m.Type {
	case schema.TypeString:
		return "aws.StringValue"
	case schema.TypeInteger:
		return "aws.Int64Value"
	case schema.TypeDouble:
		return "aws.Float64Value"
	case schema.TypeBoolean:
		return "aws.BoolValue"
	}
	return ""
}

// zeroValue is the literal a getter returns on a nil receiver.
func zeroValue(m schema.Member) string {
	switch m.Type {
	case schema.TypeString, schema.TypeEnum:
		return `""`
	case schema.TypeInteger, schema.TypeDouble:
		return "0"
	case schema.TypeBoolean:
		return "false"
	}
	return "nil"
}

func structTag(m schema.Member) string {
	if m.Location == schema.LocationURI {
		return "`json:\"-\" location:\"uri\" locationName:\"" + m.Name + "\"`"
	}
	return "`json:\"" + m.Name + ",omitempty\"`"
}

// formatBound renders a numeric bound as a Go literal for the member type.
func formatBound(m schema.Member, v float64) string {
	if m.Type == schema.TypeInteger {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ConstraintText describes the range or length bounds of m as one
// sentence, or "" when m is unbounded.
func ConstraintText(m schema.Member) string {
	switch {
	case m.Min != nil && m.Max != nil:
		return "Valid range: " + formatBound(m, *m.Min) + " to " + formatBound(m, *m.Max) + "."
	case m.Min != nil:
		return "Minimum value of " + formatBound(m, *m.Min) + "."
	case m.Max != nil:
		return "Maximum value of " + formatBound(m, *m.Max) + "."
	}
	switch {
	case m.MinLength != nil && m.MaxLength != nil && *m.MinLength == *m.MaxLength:
		return "Length must be exactly " + strconv.Itoa(*m.MinLength) + "."
	case m.MinLength != nil && m.MaxLength != nil:
		return "Length between " + strconv.Itoa(*m.MinLength) + " and " + strconv.Itoa(*m.MaxLength) + "."
	case m.MinLength != nil:
		return "Minimum length of " + strconv.Itoa(*m.MinLength) + "."
	case m.MaxLength != nil:
		return "Maximum length of " + strconv.Itoa(*m.MaxLength) + "."
	}
	return ""
}

// memberDoc returns the comment lines for a struct field; "" marks a
// paragraph break.
func memberDoc(m schema.Member) []string {
	var lines []string
	add := func(text string) {
		if text == "" {
			return
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wrap(text)...)
	}
	add(m.Doc)
	add(ConstraintText(m))
	if m.Required {
		add(schema.ExportName(m.Name) + " is a required field")
	}
	return lines
}

// wrap breaks text into lines of at most commentWidth characters, never
// splitting a word.
func wrap(text string) []string {
	var lines []string
	line := ""
	for _, w := range strings.Fields(text) {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) <= commentWidth:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

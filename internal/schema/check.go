// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/ManuGH/medialive-go/internal/validate"
)

var (
	httpMethods = []string{
		http.MethodGet, http.MethodPut, http.MethodPost,
		http.MethodDelete, http.MethodPatch, http.MethodHead,
	}
	pathLabel = regexp.MustCompile(`\{([^{}]+)\}`)

	// methodNames are generated on every shape and cannot double as fields.
	methodNames = []string{"String", "GoString", "Equal", "Hash", "Validate"}
)

// Check reports every structural defect of the schema at once: dangling
// references, duplicate names, empty enums, inverted bounds and
// operations whose path labels do not match their URI members.
func (s *Schema) Check() error {
	s.reindex()
	v := validate.New()

	v.NotEmpty("service.name", s.Service.Name)
	v.NotEmpty("service.apiVersion", s.Service.APIVersion)

	types := map[string]struct{}{}
	consts := map[string]struct{}{}
	for _, e := range s.Enums {
		s.checkEnum(v, e, types, consts)
	}
	for _, sh := range s.Shapes {
		s.checkShape(v, sh, types)
	}

	ops := map[string]struct{}{}
	for _, op := range s.Operations {
		s.checkOperation(v, op, ops)
	}

	return v.Err()
}

func (s *Schema) checkEnum(v *validate.Validator, e Enum, types, consts map[string]struct{}) {
	field := "enum " + e.Name
	v.Identifier(field, e.Name)
	v.Unique(field, e.Name, types)
	if len(e.Values) == 0 {
		v.AddError(field, "enum has no values", e.Name)
	}
	seen := map[string]struct{}{}
	for i, val := range e.Values {
		vf := fmt.Sprintf("%s.values[%d]", field, i)
		v.NotEmpty(vf, val)
		v.Unique(vf, val, seen)
		v.Unique(vf+" (Go constant)", EnumConstName(e.Name, val), consts)
	}
}

func (s *Schema) checkShape(v *validate.Validator, sh Shape, types map[string]struct{}) {
	field := "shape " + sh.Name
	v.Identifier(field, sh.Name)
	v.Unique(field, sh.Name, types)
	v.NotEmpty(field+".file", sh.File)

	names := map[string]struct{}{}
	goNames := map[string]struct{}{}
	for _, m := range sh.Members {
		mf := field + "." + m.Name
		v.NotEmpty(mf, m.Name)
		v.Identifier(mf, ExportName(m.Name))
		v.Unique(mf, m.Name, names)
		v.Unique(mf+" (Go name)", ExportName(m.Name), goNames)
		if slices.Contains(methodNames, ExportName(m.Name)) {
			v.AddError(mf, "member name collides with a generated method", m.Name)
		}
		s.checkMember(v, mf, m)
	}
}

func (s *Schema) checkMember(v *validate.Validator, field string, m Member) {
	if !m.Type.IsValid() {
		v.AddError(field+".type", unknownTypeMessage(m.Type), m.Type)
		return
	}

	switch {
	case m.Type == TypeList:
		if m.Items == nil {
			v.AddError(field+".items", "list member needs an items type", nil)
			break
		}
		if m.Items.Type == TypeList {
			v.AddError(field+".items", "nested lists are not supported", m.Items.Type)
			break
		}
		s.checkRef(v, field+".items", m.Items.Type, m.Items.Ref)
	default:
		if m.Items != nil {
			v.AddError(field+".items", "items is only valid on list members", m.Type)
		}
		s.checkRef(v, field, m.Type, m.Ref)
	}

	if (m.Min != nil || m.Max != nil) && !m.Type.IsNumeric() {
		v.AddError(field, "min/max apply to integer and double members only", m.Type)
	}
	if m.Min != nil && m.Max != nil && *m.Min > *m.Max {
		v.AddError(field, fmt.Sprintf("min %v is greater than max %v", *m.Min, *m.Max), *m.Min)
	}
	if (m.MinLength != nil || m.MaxLength != nil) && m.Type != TypeString && m.Type != TypeList {
		v.AddError(field, "minLength/maxLength apply to string and list members only", m.Type)
	}
	if m.MinLength != nil && *m.MinLength < 0 {
		v.AddError(field, "minLength cannot be negative", *m.MinLength)
	}
	if m.MinLength != nil && m.MaxLength != nil && *m.MinLength > *m.MaxLength {
		v.AddError(field, fmt.Sprintf("minLength %d is greater than maxLength %d", *m.MinLength, *m.MaxLength), *m.MinLength)
	}

	switch m.Location {
	case LocationBody:
	case LocationURI:
		if m.Type != TypeString {
			v.AddError(field+".location", "uri members must be strings", m.Type)
		}
		if !m.Required {
			v.AddError(field+".location", "uri members must be required", m.Name)
		}
	default:
		v.AddError(field+".location", fmt.Sprintf("unknown location %q", m.Location), m.Location)
	}
}

func (s *Schema) checkRef(v *validate.Validator, field string, t MemberType, ref string) {
	switch t {
	case TypeEnum:
		if _, err := s.Enum(ref); err != nil {
			v.AddError(field+".ref", err.Error(), ref)
		}
	case TypeStructure:
		if _, err := s.Shape(ref); err != nil {
			v.AddError(field+".ref", err.Error(), ref)
		}
	default:
		if !t.IsValid() {
			v.AddError(field+".type", unknownTypeMessage(t), t)
		} else if ref != "" {
			v.AddError(field+".ref", fmt.Sprintf("%s members take no ref", t), ref)
		}
	}
}

func (s *Schema) checkOperation(v *validate.Validator, op Operation, seen map[string]struct{}) {
	field := "operation " + op.Name
	v.Identifier(field, op.Name)
	v.Unique(field, op.Name, seen)
	v.OneOf(field+".method", op.Method, httpMethods)
	if !strings.HasPrefix(op.Path, "/") {
		v.AddError(field+".path", "path must start with /", op.Path)
	}

	labels := map[string]bool{}
	for _, match := range pathLabel.FindAllStringSubmatch(op.Path, -1) {
		labels[match[1]] = false
	}

	if op.Input != "" {
		in, err := s.Shape(op.Input)
		if err != nil {
			v.AddError(field+".input", err.Error(), op.Input)
		} else {
			for _, m := range in.Members {
				if m.Location != LocationURI {
					continue
				}
				if _, ok := labels[m.Name]; !ok {
					v.AddError(field+".path", fmt.Sprintf("uri member %q has no {%s} label", m.Name, m.Name), op.Path)
					continue
				}
				labels[m.Name] = true
			}
		}
	}
	for label, bound := range labels {
		if !bound {
			v.AddError(field+".path", fmt.Sprintf("label {%s} is not bound to a uri member", label), op.Path)
		}
	}

	if op.Output != "" {
		if _, err := s.Shape(op.Output); err != nil {
			v.AddError(field+".output", err.Error(), op.Output)
		}
	}
}

func unknownTypeMessage(t MemberType) string {
	names := make([]string, 0, len(AllMemberTypes()))
	for _, mt := range AllMemberTypes() {
		names = append(names, mt.String())
	}
	return fmt.Sprintf("unknown member type %q (want one of %s)", t, strings.Join(names, ", "))
}

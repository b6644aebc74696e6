// SPDX-License-Identifier: MIT

package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ManuGH/medialive-go/internal/schema"
)

// Header marks every file owned by the generator. Write only prunes files
// that start with it.
const Header = "// Code generated by medialivegen. DO NOT EDIT."

const (
	awsPkg     = "github.com/aws/aws-sdk-go/aws"
	requestPkg = "github.com/aws/aws-sdk-go/aws/request"
	shapePkg   = "github.com/ManuGH/medialive-go/internal/shape"
)

type printer struct {
	buf bytes.Buffer
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) blank() {
	p.buf.WriteByte('\n')
}

func (p *printer) comment(indent string, lines []string) {
	for _, l := range lines {
		if l == "" {
			p.line("%s//", indent)
			continue
		}
		p.line("%s// %s", indent, l)
	}
}

func (p *printer) header(pkg string, std, ext []string) {
	p.line("%s", Header)
	p.blank()
	p.line("package %s", pkg)
	if len(std)+len(ext) == 0 {
		return
	}
	p.blank()
	p.line("import (")
	for _, path := range std {
		p.line("\t%q", path)
	}
	if len(std) > 0 && len(ext) > 0 {
		p.blank()
	}
	for _, path := range ext {
		p.line("\t%q", path)
	}
	p.line(")")
}

// emitEnums renders every enumeration, sorted by name.
func emitEnums(pkg string, s *schema.Schema) []byte {
	enums := make([]schema.Enum, len(s.Enums))
	copy(enums, s.Enums)
	sort.Slice(enums, func(i, j int) bool { return enums[i].Name < enums[j].Name })

	var p printer
	p.header(pkg, nil, nil)
	for _, e := range enums {
		consts := make([]string, len(e.Values))
		for i, v := range e.Values {
			consts[i] = schema.EnumConstName(e.Name, v)
		}

		p.blank()
		if e.Doc != "" {
			p.comment("", wrap(e.Doc))
		} else {
			p.line("// %s is a closed set of string values.", e.Name)
		}
		p.line("type %s string", e.Name)
		p.blank()
		p.line("const (")
		for i, v := range e.Values {
			if i > 0 {
				p.blank()
			}
			p.line("\t// %s is a %s enum value", consts[i], e.Name)
			p.line("\t%s %s = %q", consts[i], e.Name, v)
		}
		p.line(")")
		p.blank()
		p.line("// Values returns all known values for %s. Note that this can be expanded", e.Name)
		p.line("// in the future, and so it is only as up to date as the client.")
		p.line("func (%s) Values() []%s {", e.Name, e.Name)
		p.line("\treturn []%s{", e.Name)
		for _, c := range consts {
			p.line("\t\t%s,", c)
		}
		p.line("\t}")
		p.line("}")
		p.blank()
		p.line("// IsValid reports whether e is one of the known %s values.", e.Name)
		p.line("func (e %s) IsValid() bool {", e.Name)
		p.line("\tswitch e {")
		p.line("\tcase %s:", joinComma(consts))
		p.line("\t\treturn true")
		p.line("\t}")
		p.line("\treturn false")
		p.line("}")
		p.blank()
		p.line("func (e %s) String() string {", e.Name)
		p.line("\treturn string(e)")
		p.line("}")
	}
	return p.buf.Bytes()
}

func joinComma(items []string) string {
	var b bytes.Buffer
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it)
	}
	return b.String()
}

// shapeImports lists the packages a shape group refers to.
func shapeImports(s *schema.Schema, shapes []*schema.Shape) (std, ext []string) {
	var useAWS, useRequest, useFmt bool
	for _, sh := range shapes {
		validated := s.NeedsValidation(sh.Name)
		useRequest = useRequest || validated
		for _, m := range sh.Members {
			if m.Type.IsScalar() {
				useAWS = true
			}
			if validated && m.Type == schema.TypeList && m.ShapeRef() != "" && s.NeedsValidation(m.ShapeRef()) {
				useFmt = true
			}
		}
	}
	if useFmt {
		std = append(std, "fmt")
	}
	ext = append(ext, shapePkg)
	if useAWS {
		ext = append(ext, awsPkg)
	}
	if useRequest {
		ext = append(ext, requestPkg)
	}
	return std, ext
}

// emitShapes renders one shape group.
func emitShapes(pkg string, s *schema.Schema, file string) []byte {
	shapes := s.ShapesInFile(file)
	var p printer
	std, ext := shapeImports(s, shapes)
	p.header(pkg, std, ext)
	for _, sh := range shapes {
		emitShape(&p, s, sh)
	}
	return p.buf.Bytes()
}

func emitShape(p *printer, s *schema.Schema, sh *schema.Shape) {
	name := sh.Name

	p.blank()
	if sh.Doc != "" {
		p.comment("", wrap(sh.Doc))
	} else {
		p.line("// %s has no documented purpose.", name)
	}
	if len(sh.Members) == 0 {
		p.line("type %s struct{}", name)
	} else {
		p.line("type %s struct {", name)
		for i, m := range sh.Members {
			if i > 0 {
				p.blank()
			}
			p.comment("\t", memberDoc(m))
			p.line("\t%s %s %s", schema.ExportName(m.Name), GoType(m), structTag(m))
		}
		p.line("}")
	}

	p.blank()
	p.line("// String returns the string representation.")
	p.line("func (s %s) String() string {", name)
	p.line("\treturn shape.Stringify(s)")
	p.line("}")
	p.blank()
	p.line("// GoString returns the string representation.")
	p.line("func (s %s) GoString() string {", name)
	p.line("\treturn s.String()")
	p.line("}")
	p.blank()
	p.line("// Equal reports whether s and o hold the same member values.")
	p.line("func (s *%s) Equal(o *%s) bool {", name, name)
	p.line("\treturn shape.Equal(s, o)")
	p.line("}")
	p.blank()
	p.line("// Hash returns a structural hash; equal values hash alike.")
	p.line("func (s *%s) Hash() uint64 {", name)
	p.line("\treturn shape.Hash(s)")
	p.line("}")

	if s.NeedsValidation(name) {
		emitValidate(p, s, sh)
	}

	for _, m := range sh.Members {
		field := schema.ExportName(m.Name)
		p.blank()
		p.line("// Set%s sets the %s field's value.", field, field)
		p.line("func (s *%s) Set%s(v %s) *%s {", name, field, setterType(m), name)
		if m.Type.IsScalar() {
			p.line("\ts.%s = &v", field)
		} else {
			p.line("\ts.%s = v", field)
		}
		p.line("\treturn s")
		p.line("}")
		p.blank()
		p.line("// Get%s returns the value of %s, or its zero value when unset.", field, field)
		p.line("func (s *%s) Get%s() %s {", name, field, setterType(m))
		p.line("\tif s == nil {")
		p.line("\t\treturn %s", zeroValue(m))
		p.line("\t}")
		if m.Type.IsScalar() {
			p.line("\treturn %s(s.%s)", valueFunc(m), field)
		} else {
			p.line("\treturn s.%s", field)
		}
		p.line("}")
	}
}

func emitValidate(p *printer, s *schema.Schema, sh *schema.Shape) {
	p.blank()
	p.line("// Validate inspects the fields of the type to determine if they are valid.")
	p.line("func (s *%s) Validate() error {", sh.Name)
	p.line("\tinvalidParams := request.ErrInvalidParams{Context: %q}", sh.Name)
	for _, m := range sh.Members {
		field := schema.ExportName(m.Name)
		if m.Required {
			if m.Type == schema.TypeEnum {
				p.line("\tif s.%s == \"\" {", field)
			} else {
				p.line("\tif s.%s == nil {", field)
			}
			p.line("\t\tinvalidParams.Add(request.NewErrParamRequired(%q))", field)
			p.line("\t}")
		}
		if minVal := m.MinValue(); minVal > 0 {
			bound := formatBound(m, minVal)
			p.line("\tif s.%s != nil && *s.%s < %s {", field, field, bound)
			p.line("\t\tinvalidParams.Add(request.NewErrParamMinValue(%q, %s))", field, bound)
			p.line("\t}")
		}
		if minLen := m.MinLen(); minLen > 0 {
			if m.Type == schema.TypeList {
				p.line("\tif s.%s != nil && len(s.%s) < %d {", field, field, minLen)
			} else {
				p.line("\tif s.%s != nil && len(*s.%s) < %d {", field, field, minLen)
			}
			p.line("\t\tinvalidParams.Add(request.NewErrParamMinLen(%q, %d))", field, minLen)
			p.line("\t}")
		}
	}
	for _, m := range sh.Members {
		ref := m.ShapeRef()
		if ref == "" || !s.NeedsValidation(ref) {
			continue
		}
		field := schema.ExportName(m.Name)
		if m.Type == schema.TypeStructure {
			p.line("\tif s.%s != nil {", field)
			p.line("\t\tif err := s.%s.Validate(); err != nil {", field)
			p.line("\t\t\tinvalidParams.AddNested(%q, err.(request.ErrInvalidParams))", field)
			p.line("\t\t}")
			p.line("\t}")
			continue
		}
		p.line("\tfor i, v := range s.%s {", field)
		p.line("\t\tif v == nil {")
		p.line("\t\t\tcontinue")
		p.line("\t\t}")
		p.line("\t\tif err := v.Validate(); err != nil {")
		p.line("\t\t\tinvalidParams.AddNested(fmt.Sprintf(\"%%s[%%v]\", %q, i), err.(request.ErrInvalidParams))", field)
		p.line("\t\t}")
		p.line("\t}")
	}
	p.blank()
	p.line("\tif invalidParams.Len() > 0 {")
	p.line("\t\treturn invalidParams")
	p.line("\t}")
	p.line("\treturn nil")
	p.line("}")
}

// emitOperations renders service metadata, one Operation value per call
// and its typed request/response helpers.
func emitOperations(pkg string, s *schema.Schema) []byte {
	var p printer
	p.header(pkg, []string{"context", "net/http"}, nil)

	svc := s.Service
	p.blank()
	p.line("// Service metadata.")
	p.line("const (")
	p.line("\tServiceName    = %q", svc.Name)
	p.line("\tServiceTitle   = %q", svc.Title)
	p.line("\tAPIVersion     = %q", svc.APIVersion)
	p.line("\tEndpointPrefix = %q", svc.EndpointPrefix)
	p.line(")")

	for _, op := range s.Operations {
		p.blank()
		if op.Doc != "" {
			p.comment("", wrap(op.Name+"Operation describes the "+op.Name+" call. "+op.Doc))
		} else {
			p.line("// %sOperation describes the %s call.", op.Name, op.Name)
		}
		p.line("var %sOperation = &Operation{", op.Name)
		p.line("\tName:       %q,", op.Name)
		p.line("\tHTTPMethod: %q,", op.Method)
		p.line("\tHTTPPath:   %q,", op.Path)
		p.line("\tInput:      %q,", op.Input)
		p.line("\tOutput:     %q,", op.Output)
		p.line("}")
	}

	p.blank()
	p.line("// Operations returns every operation of the service in declared order.")
	p.line("func Operations() []*Operation {")
	p.line("\treturn []*Operation{")
	for _, op := range s.Operations {
		p.line("\t\t%sOperation,", op.Name)
	}
	p.line("\t}")
	p.line("}")

	for _, op := range s.Operations {
		if op.Input != "" {
			p.blank()
			p.line("// New%sHTTPRequest builds the HTTP request for %s against endpoint.", op.Name, op.Name)
			p.line("func New%sHTTPRequest(ctx context.Context, endpoint string, input *%s) (*http.Request, error) {", op.Name, op.Input)
			p.line("\treturn NewRequest(ctx, endpoint, %sOperation, input)", op.Name)
			p.line("}")
		}
		if op.Output != "" {
			p.blank()
			p.line("// Decode%sResponse decodes a %s response body.", op.Name, op.Name)
			p.line("func Decode%sResponse(resp *http.Response) (*%s, error) {", op.Name, op.Output)
			p.line("\tout := &%s{}", op.Output)
			p.line("\tif err := UnmarshalResponse(resp, out); err != nil {")
			p.line("\t\treturn nil, err")
			p.line("\t}")
			p.line("\treturn out, nil")
			p.line("}")
		}
	}
	return p.buf.Bytes()
}

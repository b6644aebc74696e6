// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/oasdiff/yaml"
)

const componentPrefix = "#/components/schemas/"

// OpenAPI exports the schema as an OpenAPI 3 document: one component
// schema per shape and enum, one path per operation. URI members become
// path parameters and are left out of the component body schema.
func (s *Schema) OpenAPI() (*openapi3.T, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   s.Service.Title,
			Version: s.Service.APIVersion,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(s.Shapes)+len(s.Enums)),
		},
	}

	// Allocate first so refs can point at component values regardless of order.
	components := make(map[string]*openapi3.Schema, len(s.Shapes)+len(s.Enums))
	for _, e := range s.Enums {
		sch := openapi3.NewStringSchema()
		sch.Description = e.Doc
		for _, val := range e.Values {
			sch.Enum = append(sch.Enum, val)
		}
		components[e.Name] = sch
	}
	for _, sh := range s.Shapes {
		components[sh.Name] = openapi3.NewObjectSchema()
	}

	for _, sh := range s.Shapes {
		sch := components[sh.Name]
		sch.Description = sh.Doc
		for _, m := range sh.Members {
			if m.Location == LocationURI {
				continue
			}
			sch.Properties[m.Name] = memberSchema(m, components)
			if m.Required {
				sch.Required = append(sch.Required, m.Name)
			}
		}
	}
	for name, sch := range components {
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", sch)
	}

	for _, op := range s.Operations {
		if err := s.addOperation(doc, op, components); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *Schema) addOperation(doc *openapi3.T, op Operation, components map[string]*openapi3.Schema) error {
	o := openapi3.NewOperation()
	o.OperationID = op.Name
	o.Summary = op.Doc

	if op.Input != "" {
		in, err := s.Shape(op.Input)
		if err != nil {
			return err
		}
		hasBody := false
		for _, m := range in.Members {
			if m.Location == LocationURI {
				p := openapi3.NewPathParameter(m.Name).WithSchema(scalarSchema(m))
				p.Description = m.Doc
				o.AddParameter(p)
				continue
			}
			hasBody = true
		}
		if hasBody && op.Method != http.MethodGet && op.Method != http.MethodHead {
			rb := openapi3.NewRequestBody().WithJSONSchemaRef(componentRef(op.Input, components))
			o.RequestBody = &openapi3.RequestBodyRef{Value: rb}
		}
	}

	resp := openapi3.NewResponse().WithDescription("Success")
	if op.Output != "" {
		resp = resp.WithJSONSchemaRef(componentRef(op.Output, components))
	}
	o.Responses = &openapi3.Responses{}
	o.Responses.Set("200", &openapi3.ResponseRef{Value: resp})

	item := doc.Paths.Value(op.Path)
	if item == nil {
		item = &openapi3.PathItem{}
		doc.Paths.Set(op.Path, item)
	}
	if item.GetOperation(op.Method) != nil {
		return fmt.Errorf("duplicate operation %s %s", op.Method, op.Path)
	}
	item.SetOperation(op.Method, o)
	return nil
}

func componentRef(name string, components map[string]*openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef(componentPrefix+name, components[name])
}

func memberSchema(m Member, components map[string]*openapi3.Schema) *openapi3.SchemaRef {
	switch m.Type {
	case TypeEnum, TypeStructure:
		return componentRef(m.Ref, components)
	case TypeList:
		arr := openapi3.NewArraySchema()
		arr.Description = m.Doc
		if m.Items.Type == TypeEnum || m.Items.Type == TypeStructure {
			arr.Items = componentRef(m.Items.Ref, components)
		} else {
			arr.Items = openapi3.NewSchemaRef("", scalarSchema(Member{Type: m.Items.Type}))
		}
		if m.MinLength != nil {
			arr.MinItems = uint64(*m.MinLength)
		}
		if m.MaxLength != nil {
			maxItems := uint64(*m.MaxLength)
			arr.MaxItems = &maxItems
		}
		return openapi3.NewSchemaRef("", arr)
	default:
		return openapi3.NewSchemaRef("", scalarSchema(m))
	}
}

func scalarSchema(m Member) *openapi3.Schema {
	var sch *openapi3.Schema
	switch m.Type {
	case TypeInteger:
		sch = openapi3.NewInt64Schema()
	case TypeDouble:
		sch = openapi3.NewFloat64Schema()
	case TypeBoolean:
		sch = openapi3.NewBoolSchema()
	default:
		sch = openapi3.NewStringSchema()
	}
	sch.Description = m.Doc
	if m.Min != nil {
		minVal := *m.Min
		sch.Min = &minVal
	}
	if m.Max != nil {
		maxVal := *m.Max
		sch.Max = &maxVal
	}
	if m.MinLength != nil {
		sch.MinLength = uint64(*m.MinLength)
	}
	if m.MaxLength != nil {
		maxLen := uint64(*m.MaxLength)
		sch.MaxLength = &maxLen
	}
	return sch
}

// MarshalOpenAPIYAML renders the exported OpenAPI document as YAML.
func (s *Schema) MarshalOpenAPIYAML() ([]byte, error) {
	doc, err := s.OpenAPI()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	return out, nil
}

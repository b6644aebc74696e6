// SPDX-License-Identifier: MIT

// Package schema loads the API description the medialive package is
// generated from: service metadata, operations, shapes and enums.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// MemberType is the wire type of a shape member.
type MemberType string

const (
	TypeString    MemberType = "string"
	TypeInteger   MemberType = "integer"
	TypeDouble    MemberType = "double"
	TypeBoolean   MemberType = "boolean"
	TypeEnum      MemberType = "enum"
	TypeStructure MemberType = "structure"
	TypeList      MemberType = "list"
)

// AllMemberTypes returns every supported member type.
func AllMemberTypes() []MemberType {
	return []MemberType{TypeString, TypeInteger, TypeDouble, TypeBoolean, TypeEnum, TypeStructure, TypeList}
}

// IsValid checks if the member type is supported.
func (t MemberType) IsValid() bool {
	return slices.Contains(AllMemberTypes(), t)
}

// IsScalar reports whether values of t are stored behind a pointer.
func (t MemberType) IsScalar() bool {
	switch t {
	case TypeString, TypeInteger, TypeDouble, TypeBoolean:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t accepts min/max bounds.
func (t MemberType) IsNumeric() bool {
	return t == TypeInteger || t == TypeDouble
}

// String returns the string representation.
func (t MemberType) String() string {
	return string(t)
}

// Location says where a request member travels on the wire.
type Location string

const (
	LocationBody Location = ""
	LocationURI  Location = "uri"
)

// Schema is a parsed API description.
type Schema struct {
	Service    Service     `yaml:"service"`
	Operations []Operation `yaml:"operations"`
	Shapes     []Shape     `yaml:"shapes"`
	Enums      []Enum      `yaml:"enums"`

	shapeIndex map[string]int
	enumIndex  map[string]int
}

// Service holds service-wide metadata.
type Service struct {
	Name           string `yaml:"name"`
	Title          string `yaml:"title"`
	APIVersion     string `yaml:"apiVersion"`
	Protocol       string `yaml:"protocol"`
	EndpointPrefix string `yaml:"endpointPrefix"`
}

// Operation describes one HTTP call of the service.
type Operation struct {
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`
	Doc    string `yaml:"doc,omitempty"`
}

// Shape is a structure with optional members in declared order.
type Shape struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Doc     string   `yaml:"doc,omitempty"`
	Members []Member `yaml:"members,omitempty"`
}

// Member is a single field of a shape.
type Member struct {
	Name      string     `yaml:"name"`
	Type      MemberType `yaml:"type"`
	Ref       string     `yaml:"ref,omitempty"`
	Items     *Items     `yaml:"items,omitempty"`
	Min       *float64   `yaml:"min,omitempty"`
	Max       *float64   `yaml:"max,omitempty"`
	MinLength *int       `yaml:"minLength,omitempty"`
	MaxLength *int       `yaml:"maxLength,omitempty"`
	Required  bool       `yaml:"required,omitempty"`
	Location  Location   `yaml:"location,omitempty"`
	Doc       string     `yaml:"doc,omitempty"`
}

// Items is the element type of a list member.
type Items struct {
	Type MemberType `yaml:"type"`
	Ref  string     `yaml:"ref,omitempty"`
}

// Enum is a closed set of string values.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc,omitempty"`
	Values []string `yaml:"values"`
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	// #nosec G304 -- schema path comes from the generator configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document. Unknown keys are rejected.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("schema document is empty")
		}
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("schema contains multiple documents or trailing content")
	}
	s.reindex()
	return &s, nil
}

func (s *Schema) reindex() {
	s.shapeIndex = make(map[string]int, len(s.Shapes))
	for i, sh := range s.Shapes {
		if _, dup := s.shapeIndex[sh.Name]; !dup {
			s.shapeIndex[sh.Name] = i
		}
	}
	s.enumIndex = make(map[string]int, len(s.Enums))
	for i, e := range s.Enums {
		if _, dup := s.enumIndex[e.Name]; !dup {
			s.enumIndex[e.Name] = i
		}
	}
}

// SPDX-License-Identifier: MIT

package shape

import (
	"math"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
)

type level string

type inner struct {
	Id   *string
	Mode level
}

type outer struct {
	Name    *string
	Count   *int64
	Ratio   *float64
	On      *bool
	Mode    level
	Inner   *inner
	Items   []*inner
	Tags    []level
	Labels  map[string]string
	private string
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "empty", in: outer{}, want: "{}"},
		{name: "nil pointer", in: (*outer)(nil), want: "<nil>"},
		{name: "nil interface", in: nil, want: "<nil>"},
		{
			name: "scalars in declared order",
			in: outer{
				On:    aws.Bool(true),
				Count: aws.Int64(7),
				Name:  aws.String("a\"b"),
				Ratio: aws.Float64(2.5),
			},
			want: `{Name: "a\"b", Count: 7, Ratio: 2.5, On: true}`,
		},
		{
			name: "enum unquoted and nested",
			in: &outer{
				Mode:  "HIGH",
				Inner: &inner{Id: aws.String("x")},
			},
			want: `{Mode: HIGH, Inner: {Id: "x"}}`,
		},
		{
			name: "slices",
			in: outer{
				Items: []*inner{{Mode: "A"}, nil},
				Tags:  []level{"X", "Y"},
			},
			want: `{Items: [{Mode: A}, <nil>], Tags: [X, Y]}`,
		},
		{
			name: "empty slice is set",
			in:   outer{Tags: []level{}},
			want: `{Tags: []}`,
		},
		{
			name: "map keys sorted",
			in:   outer{Labels: map[string]string{"b": "2", "a": "1"}},
			want: `{Labels: {"a": "1", "b": "2"}}`,
		},
		{
			name: "unexported ignored",
			in:   outer{private: "hidden"},
			want: "{}",
		},
		{
			name: "negative zero",
			in:   outer{Ratio: aws.Float64(math.Copysign(0, -1))},
			want: "{Ratio: 0}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	a := &outer{Name: aws.String("n"), Inner: &inner{Mode: "A"}}
	b := &outer{Name: aws.String("n"), Inner: &inner{Mode: "A"}}
	c := &outer{Name: aws.String("n"), Inner: &inner{Mode: "B"}}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal((*outer)(nil), (*outer)(nil)))
	assert.False(t, Equal(a, (*outer)(nil)))
	assert.False(t, Equal((*outer)(nil), a))
	assert.False(t, Equal(&outer{}, &outer{Tags: []level{}}))
}

func TestHash(t *testing.T) {
	a := &outer{Count: aws.Int64(1), Tags: []level{"X"}}
	b := &outer{Count: aws.Int64(1), Tags: []level{"X"}}
	c := &outer{Count: aws.Int64(2), Tags: []level{"X"}}

	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(c))
	assert.NotEqual(t, Hash(&inner{}), Hash(&outer{}), "type name is part of the hash")

	neg := &outer{Ratio: aws.Float64(math.Copysign(0, -1))}
	pos := &outer{Ratio: aws.Float64(0)}
	assert.True(t, Equal(neg, pos))
	assert.Equal(t, Hash(neg), Hash(pos))
}

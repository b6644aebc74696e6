// SPDX-License-Identifier: MIT

package codegen

import (
	"strings"
	"testing"

	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestGoType(t *testing.T) {
	tests := []struct {
		member schema.Member
		want   string
	}{
		{schema.Member{Type: schema.TypeString}, "*string"},
		{schema.Member{Type: schema.TypeInteger}, "*int64"},
		{schema.Member{Type: schema.TypeDouble}, "*float64"},
		{schema.Member{Type: schema.TypeBoolean}, "*bool"},
		{schema.Member{Type: schema.TypeEnum, Ref: "H265Tier"}, "H265Tier"},
		{schema.Member{Type: schema.TypeStructure, Ref: "Hdr10Settings"}, "*Hdr10Settings"},
		{schema.Member{Type: schema.TypeList, Items: &schema.Items{Type: schema.TypeString}}, "[]*string"},
		{schema.Member{Type: schema.TypeList, Items: &schema.Items{Type: schema.TypeEnum, Ref: "HlsAdMarkers"}}, "[]HlsAdMarkers"},
		{schema.Member{Type: schema.TypeList, Items: &schema.Items{Type: schema.TypeStructure, Ref: "CaptionLanguageMapping"}}, "[]*CaptionLanguageMapping"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GoType(tt.member))
		})
	}
}

func TestWrap(t *testing.T) {
	text := strings.Repeat("segment length in seconds ", 12)
	lines := wrap(text)
	assert.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), commentWidth, l)
	}
	assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "))
	assert.Empty(t, wrap("   "))
}

func TestMemberDoc(t *testing.T) {
	one, big := 1.0, 3003.0
	minLen := 1

	tests := []struct {
		name   string
		member schema.Member
		want   []string
	}{
		{
			name:   "bare",
			member: schema.Member{Name: "framerate", Type: schema.TypeDouble},
			want:   nil,
		},
		{
			name:   "range and required",
			member: schema.Member{Name: "framerateDenominator", Type: schema.TypeInteger, Min: &one, Max: &big, Required: true, Doc: "Framerate denominator."},
			want: []string{
				"Framerate denominator.",
				"",
				"Valid range: 1 to 3003.",
				"",
				"FramerateDenominator is a required field",
			},
		},
		{
			name:   "length",
			member: schema.Member{Name: "inputDeviceId", Type: schema.TypeString, MinLength: &minLen},
			want:   []string{"Minimum length of 1."},
		},
		{
			name:   "exact length",
			member: schema.Member{Name: "mac", Type: schema.TypeString, MinLength: &minLen, MaxLength: &minLen},
			want:   []string{"Length must be exactly 1."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, memberDoc(tt.member))
		})
	}
}

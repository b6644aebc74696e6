// SPDX-License-Identifier: MIT

package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/ManuGH/medialive-go/internal/validate"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRepoSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := Load(testutil.SchemaPath(t))
	require.NoError(t, err)
	return s
}

func TestLoad_RepositorySchemaIsClean(t *testing.T) {
	s := loadRepoSchema(t)
	require.NoError(t, s.Check())

	assert.Equal(t, "medialive", s.Service.Name)
	assert.Equal(t, "2017-10-14", s.Service.APIVersion)

	want := []string{"common", "h264", "h265", "hls", "mssmooth", "m2ts", "eac3", "burnin", "reservation", "inputdevice"}
	if diff := cmp.Diff(want, s.Files()); diff != "" {
		t.Errorf("Files() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestShapeLookup(t *testing.T) {
	s := loadRepoSchema(t)

	sh, err := s.Shape("H265Settings")
	require.NoError(t, err)
	require.NotEmpty(t, sh.Members)
	assert.Equal(t, "adaptiveQuantization", sh.Members[0].Name)
	assert.Equal(t, "timecodeInsertion", sh.Members[len(sh.Members)-1].Name)

	_, err = s.Shape("NoSuchShape")
	assert.ErrorIs(t, err, ErrUnknownShape)

	e, err := s.Enum("H265Profile")
	require.NoError(t, err)
	assert.Equal(t, []string{"MAIN", "MAIN_10BIT"}, e.Values)

	_, err = s.Enum("NoSuchEnum")
	assert.ErrorIs(t, err, ErrUnknownEnum)

	op, err := s.Operation("DescribeInputDevice")
	require.NoError(t, err)
	assert.Equal(t, "/prod/inputDevices/{inputDeviceId}", op.Path)

	_, err = s.Operation("DeleteEverything")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestNeedsValidation(t *testing.T) {
	s := loadRepoSchema(t)

	tests := []struct {
		shape string
		want  bool
	}{
		{"H265Settings", true},               // required framerate members
		{"H264Settings", true},               // bitrate minimum
		{"HlsGroupSettings", true},           // required destination
		{"M2tsSettings", true},               // nested DvbNitSettings has required members
		{"KeyProviderSettings", true},        // nested StaticKeySettings
		{"DescribeInputDeviceRequest", true}, // required uri member
		{"ReservationResourceSpecification", false},
		{"InputDeviceNetworkSettings", false},
		{"Rec601Settings", false},
		{"NoSuchShape", false},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			assert.Equal(t, tt.want, s.NeedsValidation(tt.shape))
		})
	}
}

func TestNeedsValidation_Cycle(t *testing.T) {
	s, err := Parse([]byte(`
service: {name: x, apiVersion: "1"}
shapes:
  - name: A
    file: f
    members:
      - {name: b, type: structure, ref: B}
  - name: B
    file: f
    members:
      - {name: a, type: structure, ref: A}
`))
	require.NoError(t, err)
	assert.False(t, s.NeedsValidation("A"))
}

func TestExportName(t *testing.T) {
	tests := map[string]string{
		"bitrate":             "Bitrate",
		"baseUrlContent1":     "BaseUrlContent1",
		"iFrameOnlyPlaylists": "IFrameOnlyPlaylists",
		"xPosition":           "XPosition",
		"":                    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ExportName(in), in)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "unknown key", doc: "service: {name: x}\nbogus: 1\n"},
		{name: "unknown member key", doc: "shapes:\n  - name: A\n    file: f\n    members:\n      - {name: a, type: string, pattern: x}\n"},
		{name: "multiple documents", doc: "service: {name: x}\n---\nservice: {name: y}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestCheck_ReportsEveryDefect(t *testing.T) {
	s, err := Parse([]byte(`
service: {name: "", apiVersion: "1"}
operations:
  - name: GetThing
    method: FETCH
    path: /things/{thingId}/{other}
    input: GetThingRequest
    output: Missing
shapes:
  - name: GetThingRequest
    file: things
    members:
      - {name: thingId, type: string, location: uri, required: true}
      - {name: count, type: integer, min: 10, max: 1}
      - {name: mode, type: enum, ref: NoEnum}
      - {name: child, type: structure, ref: NoShape}
      - {name: tags, type: list}
      - {name: flag, type: boolean, minLength: 1}
      - {name: Flag, type: boolean}
      - {name: when, type: timestamp}
      - {name: where, type: string, location: header}
      - {name: hash, type: string}
  - name: Dup
    file: things
enums:
  - name: Dup
    values: [A, A]
  - name: Empty
    values: []
  - name: Profile
    values: [MAIN_10BIT, MAIN10BIT]
`))
	require.NoError(t, err)

	err = s.Check()
	require.Error(t, err)

	var ve validate.ValidationError
	require.True(t, errors.As(err, &ve))

	fields := map[string]bool{}
	for _, e := range ve.Errors() {
		fields[e.Field] = true
	}

	for _, want := range []string{
		"service.name",
		"enum Dup.values[1]",
		"enum Empty",
		"shape Dup",
		"shape GetThingRequest.count",
		"shape GetThingRequest.mode.ref",
		"shape GetThingRequest.child.ref",
		"shape GetThingRequest.tags.items",
		"shape GetThingRequest.flag",
		"shape GetThingRequest.Flag (Go name)",
		"shape GetThingRequest.when.type",
		"shape GetThingRequest.where.location",
		"shape GetThingRequest.hash",
		"operation GetThing.method",
		"operation GetThing.path",
		"operation GetThing.output",
		"enum Profile.values[1] (Go constant)",
	} {
		assert.True(t, fields[want], "missing error for %s in %v", want, err)
	}
}

func TestCheck_KeywordWireNames(t *testing.T) {
	s, err := Parse([]byte(`
service: {name: x, apiVersion: "1"}
shapes:
  - name: Device
    file: f
    members:
      - {name: type, type: string}
      - {name: func, type: string}
      - {name: range, type: integer}
`))
	require.NoError(t, err)
	assert.NoError(t, s.Check())
}

func TestCheck_MemberNames(t *testing.T) {
	s, err := Parse([]byte(`
service: {name: x, apiVersion: "1"}
shapes:
  - name: Device
    file: f
    members:
      - {name: "", type: string}
      - {name: 9lives, type: string}
`))
	require.NoError(t, err)

	err = s.Check()
	require.Error(t, err)
	var ve validate.ValidationError
	require.True(t, errors.As(err, &ve))

	fields := map[string]bool{}
	for _, e := range ve.Errors() {
		fields[e.Field] = true
	}
	assert.True(t, fields["shape Device."], "empty wire name not reported: %v", err)
	assert.True(t, fields["shape Device.9lives"], "non-identifier wire name not reported: %v", err)
}

func TestEnumConstName(t *testing.T) {
	tests := []struct {
		enum, value, want string
	}{
		{"H264Level", "H264_LEVEL_1_1", "H264LevelH264Level11"},
		{"H265Profile", "MAIN_10BIT", "H265ProfileMain10bit"},
		{"FixedAfd", "AFD_0000", "FixedAfdAfd0000"},
		{"Eac3CodingMode", "CODING_MODE_1_0", "Eac3CodingModeCodingMode10"},
		{"HlsMode", "LIVE", "HlsModeLive"},
		{"Mixed", "a-b.c d", "MixedABCD"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, EnumConstName(tt.enum, tt.value))
		})
	}
}

func TestCheck_URIMemberRules(t *testing.T) {
	s, err := Parse([]byte(`
service: {name: x, apiVersion: "1"}
operations:
  - {name: Get, method: GET, path: "/a/{id}", input: Req}
shapes:
  - name: Req
    file: f
    members:
      - {name: id, type: integer, location: uri}
`))
	require.NoError(t, err)

	err = s.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uri members must be strings")
	assert.Contains(t, err.Error(), "uri members must be required")
}

func TestMemberType_IsValid(t *testing.T) {
	for _, mt := range AllMemberTypes() {
		assert.True(t, mt.IsValid(), mt)
	}
	for _, mt := range []MemberType{"", "timestamp", "map", "String"} {
		assert.False(t, mt.IsValid(), mt)
	}
}

func TestCheck_UnknownMemberTypeListsValidTypes(t *testing.T) {
	tests := []struct {
		name   string
		member string
		field  string
	}{
		{name: "member", member: `{name: when, type: timestamp}`, field: "shape Device.when.type"},
		{name: "list items", member: `{name: when, type: list, items: {type: timestamp}}`, field: "shape Device.when.items.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(`
service: {name: x, apiVersion: "1"}
shapes:
  - name: Device
    file: f
    members:
      - ` + tt.member + `
`))
			require.NoError(t, err)

			var ve validate.ValidationError
			require.ErrorAs(t, s.Check(), &ve)
			require.Len(t, ve.Errors(), 1)
			assert.Equal(t, tt.field, ve.Errors()[0].Field)
			assert.Equal(t, `unknown member type "timestamp" (want one of string, integer, double, boolean, enum, structure, list)`, ve.Errors()[0].Message)
		})
	}
}

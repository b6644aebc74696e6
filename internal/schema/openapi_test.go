// SPDX-License-Identifier: MIT

package schema

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI_Document(t *testing.T) {
	s := loadRepoSchema(t)

	doc, err := s.OpenAPI()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "AWS Elemental MediaLive", doc.Info.Title)
	assert.Len(t, doc.Components.Schemas, len(s.Shapes)+len(s.Enums))

	h265 := doc.Components.Schemas["H265Settings"].Value
	require.NotNil(t, h265)
	assert.ElementsMatch(t, []string{"framerateDenominator", "framerateNumerator"}, h265.Required)

	bitrate := h265.Properties["bitrate"].Value
	require.NotNil(t, bitrate.Min)
	require.NotNil(t, bitrate.Max)
	assert.Equal(t, 100000.0, *bitrate.Min)
	assert.Equal(t, 40000000.0, *bitrate.Max)

	profile := h265.Properties["profile"]
	assert.Equal(t, "#/components/schemas/H265Profile", profile.Ref)
	assert.Equal(t, []any{"MAIN", "MAIN_10BIT"}, profile.Value.Enum)

	adMarkers := doc.Components.Schemas["HlsGroupSettings"].Value.Properties["adMarkers"].Value
	require.NotNil(t, adMarkers.Items)
	assert.Equal(t, "#/components/schemas/HlsAdMarkers", adMarkers.Items.Ref)
}

func TestOpenAPI_URIMembersArePathParameters(t *testing.T) {
	s := loadRepoSchema(t)

	doc, err := s.OpenAPI()
	require.NoError(t, err)

	item := doc.Paths.Value("/prod/inputDevices/{inputDeviceId}")
	require.NotNil(t, item)
	op := item.GetOperation(http.MethodGet)
	require.NotNil(t, op)
	assert.Equal(t, "DescribeInputDevice", op.OperationID)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "inputDeviceId", op.Parameters[0].Value.Name)
	assert.Equal(t, openapi3.ParameterInPath, op.Parameters[0].Value.In)
	assert.Nil(t, op.RequestBody)

	req := doc.Components.Schemas["DescribeInputDeviceRequest"].Value
	assert.NotContains(t, req.Properties, "inputDeviceId")
}

func TestOpenAPI_RejectsBrokenSchema(t *testing.T) {
	s, err := Parse([]byte("service: {name: x, apiVersion: \"1\"}\nshapes:\n  - {name: A, file: f, members: [{name: b, type: structure, ref: Nope}]}\n"))
	require.NoError(t, err)

	_, err = s.OpenAPI()
	assert.Error(t, err)
}

func TestMarshalOpenAPIYAML_RoundTrip(t *testing.T) {
	s := loadRepoSchema(t)

	out, err := s.MarshalOpenAPIYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "DescribeInputDevice")

	loaded, err := openapi3.NewLoader().LoadFromData(out)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate(context.Background()))
	assert.NotNil(t, loaded.Components.Schemas["M2tsSettings"])
}

// SPDX-License-Identifier: MIT

package medialive

import (
	"encoding/json"
	"testing"

	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadContract(t *testing.T) *openapi3.T {
	t.Helper()
	s, err := schema.Load(testutil.SchemaPath(t))
	require.NoError(t, err)
	doc, err := s.OpenAPI()
	require.NoError(t, err)
	return doc
}

func visit(t *testing.T, doc *openapi3.T, name string, v any) error {
	t.Helper()
	ref := doc.Components.Schemas[name]
	require.NotNil(t, ref, "no component %s", name)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	var wire any
	require.NoError(t, json.Unmarshal(data, &wire))
	return ref.Value.VisitJSON(wire)
}

func TestWireJSON_MatchesContract(t *testing.T) {
	doc := loadContract(t)

	valid := map[string]any{
		"H265Settings": (&H265Settings{}).
			SetFramerateNumerator(60000).
			SetFramerateDenominator(1001).
			SetBitrate(8000000).
			SetProfile(H265ProfileMain10bit).
			SetTier(H265TierHigh).
			SetGopSize(2).
			SetColorSpaceSettings((&H265ColorSpaceSettings{}).
				SetHdr10Settings((&Hdr10Settings{}).SetMaxCll(1000).SetMaxFall(400))),
		"HlsGroupSettings": (&HlsGroupSettings{}).
			SetDestination((&OutputLocationRef{}).SetDestinationRefId("dest-1")).
			SetSegmentLength(6).
			SetMode(HlsModeLive).
			SetCaptionLanguageMappings([]*CaptionLanguageMapping{
				(&CaptionLanguageMapping{}).SetCaptionChannel(1).SetLanguageCode("eng").SetLanguageDescription("English"),
			}),
		"DescribeInputDeviceResponse": (&DescribeInputDeviceResponse{}).
			SetId("hd-1").
			SetConnectionState(InputDeviceConnectionStateConnected).
			SetNetworkSettings((&InputDeviceNetworkSettings{}).SetDnsAddresses([]*string{ptr("10.0.0.2")})),
	}
	for name, v := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, visit(t, doc, name, v))
		})
	}
}

func TestWireJSON_ContractViolations(t *testing.T) {
	doc := loadContract(t)
	base := func() *H265Settings {
		return (&H265Settings{}).SetFramerateNumerator(30).SetFramerateDenominator(1)
	}

	tests := []struct {
		name string
		in   *H265Settings
	}{
		{"above maximum", base().SetSlices(99)},
		{"missing required", (&H265Settings{}).SetFramerateNumerator(30)},
		{"unknown enum value", base().SetTier(H265Tier("ULTRA"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, visit(t, doc, "H265Settings", tt.in))
		})
	}
}

func ptr(s string) *string { return &s }

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/medialive-go/internal/testutil"
	"github.com/ManuGH/medialive-go/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func runValidate(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runValidate()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "--file is required")

	code, _, _ = runValidate("-bogus")
	assert.Equal(t, 2, code)

	code, stdout, _ := runValidate("-version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version.String()+"\n", stdout)
}

func TestRun_Payload(t *testing.T) {
	schemaPath := testutil.SchemaPath(t)

	tests := []struct {
		name     string
		shape    string
		payload  string
		wantCode int
		wantErr  []string
	}{
		{
			name:     "valid h265",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 60000, "framerateDenominator": 1001, "tier": "HIGH", "colorSpaceSettings": {"hdr10Settings": {"maxCll": 1000}}}`,
			wantCode: 0,
		},
		{
			name:     "missing required",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 30}`,
			wantCode: 1,
			wantErr:  []string{"framerateDenominator"},
		},
		{
			name:     "unknown enum and range",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 30, "framerateDenominator": 1, "tier": "ULTRA", "slices": 99}`,
			wantCode: 1,
			wantErr:  []string{"allowed values", "at most"},
		},
		{
			name:     "unknown nested member",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 30, "framerateDenominator": 1, "colorSpaceSettings": {"hdr10Settings": {"maxCLL": 1}}}`,
			wantCode: 1,
			wantErr:  []string{"H265Settings.colorSpaceSettings.hdr10Settings.maxCLL: unknown member"},
		},
		{
			name:     "unknown list element member",
			shape:    "HlsGroupSettings",
			payload:  `{"destination": {"destinationRefId": "d"}, "captionLanguageMappings": [{"captionChannel": 1, "languageCode": "eng", "languageDescription": "English", "extra": true}]}`,
			wantCode: 1,
			wantErr:  []string{"HlsGroupSettings.captionLanguageMappings[0].extra: unknown member"},
		},
		{
			name:     "memberless shape",
			shape:    "Rec601Settings",
			payload:  `{"bogus": 1}`,
			wantCode: 1,
			wantErr:  []string{"Rec601Settings.bogus: unknown member"},
		},
		{
			name:     "empty memberless shape",
			shape:    "Rec601Settings",
			payload:  `{}`,
			wantCode: 0,
		},
		{
			name:     "nested memberless shape",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 30, "framerateDenominator": 1, "colorSpaceSettings": {"rec709Settings": {"bogus": true}}}`,
			wantCode: 1,
			wantErr:  []string{"H265Settings.colorSpaceSettings.rec709Settings.bogus: unknown member"},
		},
		{
			name:     "uri only shape",
			shape:    "DescribeInputDeviceRequest",
			payload:  `{"bogus": "x"}`,
			wantCode: 1,
			wantErr:  []string{"DescribeInputDeviceRequest.bogus: unknown member"},
		},
		{
			name:     "top level unknown member",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": 30, "framerateDenominator": 1, "bogus": 1}`,
			wantCode: 1,
			wantErr:  []string{"H265Settings.bogus: unknown member"},
		},
		{
			name:     "malformed json",
			shape:    "H265Settings",
			payload:  `{"framerateNumerator": `,
			wantCode: 1,
			wantErr:  []string{"parse "},
		},
		{
			name:     "trailing data",
			shape:    "H265Settings",
			payload:  `{} {}`,
			wantCode: 1,
			wantErr:  []string{"trailing data"},
		},
		{
			name:     "unknown shape",
			shape:    "H266Settings",
			payload:  `{}`,
			wantCode: 1,
			wantErr:  []string{"unknown shape"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeTemp(t, "payload.json", tt.payload)
			code, stdout, stderr := runValidate("-schema", schemaPath, "-shape", tt.shape, "-f", file)
			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr)
			if tt.wantCode == 0 {
				assert.Contains(t, stdout, "is valid")
				return
			}
			for _, want := range tt.wantErr {
				assert.Contains(t, stderr, want)
			}
		})
	}
}

func TestRun_Config(t *testing.T) {
	schemaPath := testutil.SchemaPath(t)

	valid := writeTemp(t, "medialivegen.yaml", "schema: "+schemaPath+"\nworkers: 2\n")
	code, stdout, stderr := runValidate("-f", valid)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "is valid")

	unknownKey := writeTemp(t, "medialivegen.yaml", "schema: "+schemaPath+"\nworker: 2\n")
	code, _, stderr = runValidate("--file", unknownKey)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "strict config parse error")

	outOfRange := writeTemp(t, "medialivegen.yaml", "schema: "+schemaPath+"\nworkers: 500\n")
	code, _, stderr = runValidate("-f", outOfRange)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "workers")
}

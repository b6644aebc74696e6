// SPDX-License-Identifier: MIT

package medialive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://medialive.us-west-2.amazonaws.com/"

func TestNewRequest_BindsEscapedURI(t *testing.T) {
	in := (&DescribeInputDeviceRequest{}).SetInputDeviceId("hd/12 34")

	req, err := NewDescribeInputDeviceHTTPRequest(context.Background(), testEndpoint, in)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "medialive.us-west-2.amazonaws.com", req.URL.Host)
	assert.Equal(t, "/prod/inputDevices/hd%2F12%2034", req.URL.EscapedPath())
	assert.Nil(t, req.Body)
	assert.Equal(t, "application/json", req.Header.Get(HeaderContentType))
	_, err = uuid.Parse(req.Header.Get(HeaderInvocationID))
	assert.NoError(t, err)
}

func TestNewRequest_RejectsInvalidInput(t *testing.T) {
	ctx := context.Background()

	t.Run("nil", func(t *testing.T) {
		_, err := NewDescribeInputDeviceHTTPRequest(ctx, testEndpoint, nil)
		assert.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("nil operation", func(t *testing.T) {
		req, err := NewRequest(ctx, testEndpoint, nil, &Rec709Settings{})
		assert.ErrorIs(t, err, ErrNilOperation)
		assert.Nil(t, req)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewDescribeInputDeviceHTTPRequest(ctx, testEndpoint, &DescribeInputDeviceRequest{})
		assert.Equal(t, []string{"DescribeInputDeviceRequest.InputDeviceId"}, invalidFields(t, err))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewDescribeInputDeviceHTTPRequest(ctx, testEndpoint, (&DescribeInputDeviceRequest{}).SetInputDeviceId(""))
		assert.Equal(t, []string{"DescribeInputDeviceRequest.InputDeviceId"}, invalidFields(t, err))
	})

	t.Run("unbound path label", func(t *testing.T) {
		op := &Operation{Name: "Broken", HTTPMethod: http.MethodGet, HTTPPath: "/prod/{missing}"}
		_, err := NewRequest(ctx, testEndpoint, op, &Rec709Settings{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path label {missing}")
	})
}

func TestNewRequest_EncodesBodyMembers(t *testing.T) {
	op := &Operation{Name: "PutH265", HTTPMethod: http.MethodPut, HTTPPath: "/prod/h265"}
	in := (&H265Settings{}).
		SetFramerateNumerator(30000).
		SetFramerateDenominator(1001).
		SetTier(H265TierHigh)

	req, err := NewRequest(context.Background(), testEndpoint, op, in)
	require.NoError(t, err)
	require.NotNil(t, req.Body)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"framerateNumerator":30000,"framerateDenominator":1001,"tier":"HIGH"}`, string(body))
	assert.Equal(t, "/prod/h265", req.URL.Path)
}

func TestDescribeInputDevice_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/prod/inputDevices/hd-ab12" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":              "hd-ab12",
			"connectionState": "CONNECTED",
			"type":            "FUTURE_DEVICE",
			"hdDeviceSettings": map[string]any{
				"framerate": 59.94,
				"height":    2160,
			},
			"networkSettings": map[string]any{
				"ipScheme":     "DHCP",
				"dnsAddresses": []string{"10.0.0.2", "10.0.0.3"},
			},
		})
	}))
	defer srv.Close()

	ctx := context.Background()
	req, err := NewDescribeInputDeviceHTTPRequest(ctx, srv.URL, (&DescribeInputDeviceRequest{}).SetInputDeviceId("hd-ab12"))
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	out, err := DecodeDescribeInputDeviceResponse(resp)
	require.NoError(t, err)

	assert.Equal(t, "hd-ab12", out.GetId())
	assert.Equal(t, InputDeviceConnectionStateConnected, out.GetConnectionState())
	assert.Equal(t, InputDeviceType("FUTURE_DEVICE"), out.GetType())
	assert.False(t, out.GetType().IsValid())
	assert.Equal(t, 59.94, out.GetHdDeviceSettings().GetFramerate())
	assert.Equal(t, int64(2160), out.GetHdDeviceSettings().GetHeight())
	assert.Equal(t, InputDeviceIpSchemeDhcp, out.GetNetworkSettings().GetIpScheme())
	require.Len(t, out.GetNetworkSettings().GetDnsAddresses(), 2)
	assert.Equal(t, "10.0.0.3", *out.GetNetworkSettings().GetDnsAddresses()[1])
	assert.Empty(t, out.GetSerialNumber())

	req, err = NewDescribeInputDeviceHTTPRequest(ctx, srv.URL, (&DescribeInputDeviceRequest{}).SetInputDeviceId("other"))
	require.NoError(t, err)
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	_, err = DecodeDescribeInputDeviceResponse(resp)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestUnmarshalResponse(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		out := &InputDeviceHdSettings{}
		require.NoError(t, UnmarshalResponse(response(http.StatusOK, ""), out))
		assert.True(t, out.Equal(&InputDeviceHdSettings{}))
	})

	t.Run("malformed body", func(t *testing.T) {
		err := UnmarshalResponse(response(http.StatusOK, "{"), &InputDeviceHdSettings{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("error status", func(t *testing.T) {
		resp := response(http.StatusTooManyRequests, `{"message":"slow down"}`)
		resp.Header.Set(HeaderRequestID, "req-1")
		err := UnmarshalResponse(resp, &InputDeviceHdSettings{})

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
		assert.Equal(t, "req-1", se.RequestID)
		assert.Contains(t, err.Error(), "request id req-1")
	})
}

func TestOperations(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 1)
	assert.Same(t, DescribeInputDeviceOperation, ops[0])
	assert.Equal(t, "/prod/inputDevices/{inputDeviceId}", ops[0].HTTPPath)
	assert.Equal(t, "medialive", ServiceName)
}

// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingSpan struct {
	noop.Span
	errs   []error
	attrs  []attribute.KeyValue
	status codes.Code
	ended  bool
}

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue)        { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) SetStatus(c codes.Code, _ string)              { s.status = c }
func (s *recordingSpan) End(...trace.SpanEndOption)                    { s.ended = true }

func TestOperationAttributes(t *testing.T) {
	attrs := OperationAttributes("medialive", "DescribeInputDevice", "GET", "/prod/inputDevices/{inputDeviceId}")
	got := map[attribute.Key]string{}
	for _, kv := range attrs {
		got[kv.Key] = kv.Value.AsString()
	}
	assert.Equal(t, "aws-api", got[RPCSystemKey])
	assert.Equal(t, "medialive", got[RPCServiceKey])
	assert.Equal(t, "DescribeInputDevice", got[RPCMethodKey])
	assert.Equal(t, "GET", got[HTTPMethodKey])
	assert.Equal(t, "/prod/inputDevices/{inputDeviceId}", got[HTTPRouteKey])
}

func TestEndSpan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := &recordingSpan{}
		EndSpan(s, nil, "")
		assert.True(t, s.ended)
		assert.Empty(t, s.errs)
		assert.Equal(t, codes.Unset, s.status)
	})

	t.Run("failure", func(t *testing.T) {
		s := &recordingSpan{}
		boom := errors.New("boom")
		EndSpan(s, boom, "validation")
		assert.True(t, s.ended)
		assert.Equal(t, []error{boom}, s.errs)
		assert.Equal(t, codes.Error, s.status)
		assert.Equal(t, []attribute.KeyValue{ErrorTypeKey.String("validation")}, s.attrs)
	})
}

func TestStartClientSpan_NoopProvider(t *testing.T) {
	ctx, span := StartClientSpan(context.Background(), "medialive.Test")
	defer span.End()
	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
}

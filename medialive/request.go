// SPDX-License-Identifier: MIT

package medialive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/ManuGH/medialive-go/internal/telemetry"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// Header names set on every request built by NewRequest.
const (
	HeaderContentType  = "Content-Type"
	HeaderInvocationID = "Amz-Sdk-Invocation-Id"
	HeaderRequestID    = "X-Amzn-Requestid"
)

const contentTypeJSON = "application/json"

// Operation describes one HTTP call of the service.
type Operation struct {
	Name       string
	HTTPMethod string
	// HTTPPath is a template; {label} segments are filled from the input
	// members tagged location:"uri" with the same locationName.
	HTTPPath string
	Input    string
	Output   string
}

// StatusError is returned by UnmarshalResponse for a non-2xx response.
// The error body is not decoded.
type StatusError struct {
	StatusCode int
	Status     string
	RequestID  string
}

func (e *StatusError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("medialive: unexpected status %s (request id %s)", e.Status, e.RequestID)
	}
	return fmt.Sprintf("medialive: unexpected status %s", e.Status)
}

// Argument errors returned by NewRequest.
var (
	ErrNilInput     = errors.New("input is nil")
	ErrNilOperation = errors.New("operation is nil")
)

// NewRequest builds the HTTP request of op for input against endpoint.
//
// The input is validated first when it implements request.Validator.
// URI members are escaped into the path; the remaining members form the
// JSON body, which is omitted when no body member is set.
func NewRequest(ctx context.Context, endpoint string, op *Operation, input any) (req *http.Request, err error) {
	if op == nil {
		return nil, ErrNilOperation
	}
	ctx, span := telemetry.StartClientSpan(ctx, ServiceName+"."+op.Name,
		append(telemetry.OperationAttributes(ServiceName, op.Name, op.HTTPMethod, op.HTTPPath),
			telemetry.ShapeInputKey.String(op.Input))...)
	errType := ""
	defer func() { telemetry.EndSpan(span, err, errType) }()

	rv := reflect.ValueOf(input)
	if input == nil || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		errType = "invalid_input"
		return nil, fmt.Errorf("%s: %w", op.Name, ErrNilInput)
	}
	if v, ok := input.(request.Validator); ok {
		if err := v.Validate(); err != nil {
			errType = "validation"
			return nil, err
		}
	}

	path, err := bindURI(op.HTTPPath, rv)
	if err != nil {
		errType = "uri"
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	var body io.Reader
	data, err := json.Marshal(input)
	if err != nil {
		errType = "marshal"
		return nil, fmt.Errorf("%s: marshal input: %w", op.Name, err)
	}
	if !bytes.Equal(data, []byte("{}")) {
		body = bytes.NewReader(data)
		span.SetAttributes(telemetry.ShapeBodyBytes.Int(len(data)))
	}

	req, err = http.NewRequestWithContext(ctx, op.HTTPMethod, strings.TrimSuffix(endpoint, "/")+path, body)
	if err != nil {
		errType = "request"
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	req.Header.Set(HeaderContentType, contentTypeJSON)
	req.Header.Set(HeaderInvocationID, uuid.NewString())
	return req, nil
}

// bindURI replaces every {label} of tmpl with the path-escaped value of
// the uri member named label.
func bindURI(tmpl string, v reflect.Value) (string, error) {
	v = reflect.Indirect(v)
	path := tmpl
	if v.Kind() == reflect.Struct {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Tag.Get("location") != "uri" {
				continue
			}
			name := f.Tag.Get("locationName")
			fv := v.Field(i)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					return "", fmt.Errorf("uri member %s is not set", name)
				}
				fv = fv.Elem()
			}
			styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, fv.Interface())
			if err != nil {
				return "", fmt.Errorf("bind uri member %s: %w", name, err)
			}
			path = strings.ReplaceAll(path, "{"+name+"}", styled)
		}
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", fmt.Errorf("path label %s has no uri member", path[i:])
	}
	return path, nil
}

// UnmarshalResponse decodes a 2xx JSON response body into out and closes
// it. An empty body leaves out untouched. Other statuses return a
// *StatusError.
func UnmarshalResponse(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			RequestID:  resp.Header.Get(HeaderRequestID),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("medialive: decode response: %w", err)
	}
	return nil
}

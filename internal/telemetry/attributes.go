// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Span attribute keys. The rpc.* and http.* keys follow the OpenTelemetry
// semantic conventions; medialive.* keys are local to this module.
const (
	RPCSystemKey  = attribute.Key("rpc.system")
	RPCServiceKey = attribute.Key("rpc.service")
	RPCMethodKey  = attribute.Key("rpc.method")

	HTTPMethodKey = attribute.Key("http.request.method")
	HTTPRouteKey  = attribute.Key("http.route")

	ShapeInputKey  = attribute.Key("medialive.input_shape")
	ShapeBodyBytes = attribute.Key("medialive.body_bytes")

	ErrorTypeKey = attribute.Key("error.type")
)

// rpcSystem identifies AWS JSON APIs in rpc.system.
const rpcSystem = "aws-api"

// OperationAttributes describes one service operation on a span.
func OperationAttributes(service, operation, method, route string) []attribute.KeyValue {
	return []attribute.KeyValue{
		RPCSystemKey.String(rpcSystem),
		RPCServiceKey.String(service),
		RPCMethodKey.String(operation),
		HTTPMethodKey.String(method),
		HTTPRouteKey.String(route),
	}
}

// SPDX-License-Identifier: MIT

// Package medialive holds the data-transfer objects of the AWS Elemental
// MediaLive API: request, response and settings shapes plus the closed
// enumerations their members draw from.
//
// Every member is optional. Scalars are pointers, enumerations are typed
// strings where "" means unset, nested shapes are pointers and lists are
// slices. Each shape has fluent setters that mutate and return the
// receiver, nil-safe getters, and structural String, Equal and Hash:
//
//	s := (&medialive.H265Settings{}).
//		SetFramerateNumerator(30000).
//		SetFramerateDenominator(1001).
//		SetProfile(medialive.H265ProfileMain10bit)
//	if err := s.Validate(); err != nil {
//		// handle invalid settings
//	}
//
// Enumeration members accept any string. Values the client does not know
// yet survive a JSON round trip unchanged and only fail IsValid.
//
// NewRequest and UnmarshalResponse turn shapes into HTTP requests and
// decode responses. They neither send, sign nor retry; that is left to
// the caller's HTTP client.
//
// Files ending in _gen.go are produced by cmd/medialivegen from
// api/medialive.yaml.
package medialive

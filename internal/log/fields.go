// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService   = "service"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldEvent     = "event"

	// Schema fields
	FieldShape     = "shape"
	FieldEnum      = "enum"
	FieldOperation = "operation"
	FieldMember    = "member"

	// Output fields
	FieldPath     = "path"
	FieldFile     = "file"
	FieldBytes    = "bytes"
	FieldDuration = "duration_ms"
	FieldCount    = "count"
)

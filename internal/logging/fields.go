package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRunID      = "run_id"
	FieldTeamID     = "team_id"
	FieldStatusCode = "status_code"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldSucceeded  = "succeeded"
	FieldFailed     = "failed"
	FieldBytes      = "bytes"
	FieldDurationMS = "duration_ms"
	FieldWaitMS     = "wait_ms"
	FieldKind       = "kind"
	FieldSize       = "size"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

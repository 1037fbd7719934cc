package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldGameID     = "game_id"
	FieldTeam       = "team"
	FieldPhase      = "phase"
	FieldNextPhase  = "next_phase"
	FieldFactID     = "fact_id"
	FieldFactKind   = "fact_kind"
	FieldSortKey    = "sort_key"
	FieldChannel    = "channel"
	FieldWait       = "wait"
	FieldPeriod     = "period"
)

// commonAttrs returns the process-wide fields set on the root logger.
func commonAttrs(cfg Config) []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{FieldService, cfg.Service},
		{FieldVersion, cfg.Version},
		{FieldTeam, cfg.Team},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}

package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldTask      = "task"
	FieldRecord    = "record"
	FieldBytes     = "bytes"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("task drained", logger.Fields("task", 3, "bytes", n))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// DurationFields creates fields for a timed run.
func DurationFields(d time.Duration, bytes int64) map[string]interface{} {
	return map[string]interface{}{
		FieldDuration: d.Milliseconds(),
		FieldBytes:    bytes,
	}
}

package settings

import "fmt"

// CoercionError reports a raw source value that could not be converted to
// the declared type of its field (e.g. API_PORT=abc for an int field).
type CoercionError struct {
	// Key is the canonical settings key, e.g. "api_port".
	Key string
	// Type is the declared Go type of the field, e.g. "int".
	Type string
	// Value is the raw value received from the winning source.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("setting %s: cannot coerce %q to %s: %v", e.Key, e.Value, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// InvariantError reports a value that converted successfully but violates a
// declared domain rule (range, enumerated set).
type InvariantError struct {
	// Key is the canonical settings key, e.g. "api_port".
	Key string
	// Rule describes the violated rule, e.g. "must be between 1 and 65535".
	Rule string
	// Value is the offending resolved value.
	Value any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("setting %s: invalid value %v: %s", e.Key, e.Value, e.Rule)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
)

// fieldSpec describes a single settings field: the struct field name parse
// errors refer to, the canonical key used in error messages, the environment
// variable that populates the field, and an optional invariant checked after
// coercion. The resolver walks this table so that error mapping and
// validation treat every field uniformly.
type fieldSpec struct {
	field  string
	key    string
	envVar string
	check  func(*Settings) *InvariantError
}

var schema = []fieldSpec{
	{field: "AppName", key: "app_name", envVar: "APP_NAME"},
	{field: "Debug", key: "debug", envVar: "DEBUG"},
	{field: "LogLevel", key: "log_level", envVar: "LOG_LEVEL", check: checkLogLevel},
	{field: "SecretKey", key: "secret_key", envVar: "SECRET_KEY"},
	{field: "APIKey", key: "api_key", envVar: "API_KEY"},
	{field: "URL", key: "database_url", envVar: "DATABASE_URL"},
	{field: "Echo", key: "database_echo", envVar: "DATABASE_ECHO"},
	{field: "PoolSize", key: "database_pool_size", envVar: "DATABASE_POOL_SIZE", check: checkPoolSize},
	{field: "Host", key: "api_host", envVar: "API_HOST"},
	{field: "Port", key: "api_port", envVar: "API_PORT", check: checkPort},
	{field: "Workers", key: "api_workers", envVar: "API_WORKERS", check: checkWorkers},
}

func specByField(field string) *fieldSpec {
	for i := range schema {
		if schema[i].field == field {
			return &schema[i]
		}
	}
	return nil
}

// validate checks every schema invariant against the resolved value and
// returns all violations joined together, not just the first one found.
// Fields listed in skip already failed coercion and are not re-reported.
func (s *Settings) validate(skip map[string]struct{}) error {
	var violations []error
	for _, fs := range schema {
		if fs.check == nil {
			continue
		}
		if _, failed := skip[fs.field]; failed {
			continue
		}
		if violation := fs.check(s); violation != nil {
			violations = append(violations, violation)
		}
	}
	return errors.Join(violations...)
}

func checkLogLevel(s *Settings) *InvariantError {
	switch s.LogLevel {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return nil
	}
	return &InvariantError{
		Key:   "log_level",
		Rule:  fmt.Sprintf("must be one of %s, %s, %s, %s, %s", LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical),
		Value: s.LogLevel,
	}
}

func checkPort(s *Settings) *InvariantError {
	if s.API.Port < 1 || s.API.Port > 65535 {
		return &InvariantError{Key: "api_port", Rule: "must be between 1 and 65535", Value: s.API.Port}
	}
	return nil
}

func checkPoolSize(s *Settings) *InvariantError {
	if s.Database.PoolSize < 1 {
		return &InvariantError{Key: "database_pool_size", Rule: "must be at least 1", Value: s.Database.PoolSize}
	}
	return nil
}

func checkWorkers(s *Settings) *InvariantError {
	if s.API.Workers < 1 {
		return &InvariantError{Key: "api_workers", Rule: "must be at least 1", Value: s.API.Workers}
	}
	return nil
}

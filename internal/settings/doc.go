// Package settings provides the process-wide application configuration.
//
// A Settings value is assembled exactly once per process from three sources
// in increasing priority (later sources override earlier ones per field):
//  1. Compiled-in defaults (every field has one)
//  2. An optional .env file
//  3. Process environment variables
//
// Variable names are matched case-insensitively and unrecognized variables
// are ignored. The resolved value is validated exhaustively — every coercion
// failure and invariant violation found in one pass is reported together —
// and is never mutated after construction.
//
// The main entry points are [Get], the memoized process-wide accessor, and
// [New] for constructing an independent instance directly.
package settings

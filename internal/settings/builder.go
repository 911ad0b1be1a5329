package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// settingsBuilder accumulates key/value layers from the configuration
// sources, highest priority first. Merging fills only keys not yet set, so
// an earlier layer always wins over a later one for the same key.
type settingsBuilder struct {
	layers []map[string]string
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]map[string]string, 0, 2),
	}
}

// build merges the layers into a single lookup environment, parses it into a
// Settings value, and validates the result. Every coercion error and
// invariant violation found during the pass is returned together as one
// construction failure.
func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	environment := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&environment, layer); err != nil {
			return nil, fmt.Errorf("error merging settings sources: %w", err)
		}
	}

	resolved := new(Settings)
	parseErr := env.ParseWithOptions(resolved, env.Options{Environment: environment})

	failures, failedFields := coercionErrors(parseErr, environment)
	if validationErr := resolved.validate(failedFields); validationErr != nil {
		failures = append(failures, validationErr)
	}
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	return resolved, nil
}

// withEnv appends the process environment as the highest-priority layer.
// Keys are upper-cased so that variable names match case-insensitively.
func (b *settingsBuilder) withEnv() *settingsBuilder {
	environ := os.Environ()
	layer := make(map[string]string, len(environ))
	for _, pair := range environ {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		layer[strings.ToUpper(key)] = value
	}

	b.layers = append(b.layers, layer)
	return b
}

// withDotenv appends the key/value pairs of the dotenv file at path as a
// lower-priority layer. A missing file contributes nothing and is not an
// error; an unreadable or malformed file fails the build.
func (b *settingsBuilder) withDotenv(path string) *settingsBuilder {
	if path == "" {
		return b
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("path", path).Msg("dotenv file not found, skipping")
		return b
	}

	pairs, err := godotenv.Read(path)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error reading dotenv file %s: %w", path, err))
		return b
	}

	layer := make(map[string]string, len(pairs))
	for key, value := range pairs {
		layer[strings.ToUpper(key)] = value
	}

	b.layers = append(b.layers, layer)
	return b
}

// coercionErrors maps the aggregate parse error from caarlos0/env onto the
// schema, producing one [CoercionError] per failed field plus the set of
// struct field names that failed, so validation can skip them. Errors that
// cannot be attributed to a schema field are passed through unchanged.
func coercionErrors(err error, environment map[string]string) ([]error, map[string]struct{}) {
	if err == nil {
		return nil, nil
	}

	flat := []error{err}
	var aggregate env.AggregateError
	if errors.As(err, &aggregate) {
		flat = aggregate.Errors
	}

	mapped := make([]error, 0, len(flat))
	failed := make(map[string]struct{}, len(flat))
	for _, e := range flat {
		var parseErr env.ParseError
		if !errors.As(e, &parseErr) {
			mapped = append(mapped, e)
			continue
		}

		failed[parseErr.Name] = struct{}{}
		fs := specByField(parseErr.Name)
		if fs == nil {
			mapped = append(mapped, e)
			continue
		}

		mapped = append(mapped, &CoercionError{
			Key:   fs.key,
			Type:  parseErr.Type.String(),
			Value: environment[fs.envVar],
			Err:   parseErr.Err,
		})
	}

	return mapped, failed
}

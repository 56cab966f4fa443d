package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// Configuration file extensions, one per loader.
const (
	jsonExt = ".json"
	yamlExt = ".yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping named name in a YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Keys may spell flag names with hyphens or underscores:
//
//	config:
//	  log-level: debug
//	  log_pretty: false
//	  lang-max-depth: 50
//	  lang-binding: overwrite
//
// A document that does not parse, or that lacks the mapping, configures
// nothing. Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return config{}, nil
		}

		return makeConfig(doc[name]), nil
	}
}

// config implements [kong.Resolver] for YAML configuration.
type config map[string]any

// makeConfig flattens scalar values to the strings kong parses, leaving
// sequences as they are.
func makeConfig(m map[string]any) config {
	c := make(config, len(m))

	for key, val := range m {
		switch v := val.(type) {
		case uint64:
			c[key] = strconv.FormatUint(v, 10)
		case int64:
			c[key] = strconv.FormatInt(v, 10)
		case int:
			c[key] = strconv.Itoa(v)
		case float64:
			c[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			c[key] = v
		}
	}

	return c
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// Package cmd implements the sexpr subcommands: run, eval, serve, repl, init
// and version. The terminal user interface of repl lives in package repl.
//
// Commands receive their shared state through [context.Context]: the parsed
// [kong.Context], the global source files, interpreter options, the script
// search path and the output writer.
package cmd

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sexpr/lang"
)

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the YAML configuration file, and the key of the mapping within it
	// that holds flag values.
	ConfigIdentifier = "config"
)

// Vars returns the kong variables referenced by command flags.
func Vars() kong.Vars {
	return kong.Vars{
		"outputFormatEnum": strings.Join(lang.OutputFormats(), ","),
	}
}

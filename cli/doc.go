// Package cli contains the command line interface for sexpr.
//
// # Usage
//
// Without a command, the arguments name program files to run:
//
//	sexpr prog.lisp
//	sexpr run --output=json prog.lisp
//	sexpr eval '(set x 5)' '(puts (add x 1))'
//	sexpr serve --listen=:8080
//	sexpr repl --source=prelude.lisp
//
// # Configuration
//
// Flag values are read from config.json (kong's JSON loader) and from the
// "config" mapping of config.yaml in the user configuration directory.
// Keys spell flag names with hyphens or underscores:
//
//	config:
//	  log-level: debug
//	  lang-binding: overwrite
//
// "sexpr init" writes config.yaml from the current flag values.
//
// Relative script names are searched for in the "scripts" directory of the
// configuration directory and then in the directories listed in SEXPR_PATH.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Interpreter Options
//
//   - --lang-max-depth: Maximum nesting of calls in one expression
//   - --lang-binding: strict rejects re-binding a name, overwrite replaces it
//   - --lang-on-error: mark records "ERROR at line N", abort drops all output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o sexpr .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/sexpr/pprof)
package cli

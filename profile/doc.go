// Package profile provides optional runtime profiling for sexpr.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	./sexpr --pprof-mode cpu run prog.lisp
//	go tool pprof -http=: ~/.cache/sexpr/pprof/cpu.pprof
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty. With it,
// the package also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

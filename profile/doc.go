// Package profile provides optional runtime profiling through
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and every [Config] starts a no-op
// profiler, so callers never need their own build constraints.
//
// With the tag, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Profiles are written to the
// configured directory and can be inspected with:
//
//	go tool pprof -http=: cpu.pprof
//
// The tagged build also imports [net/http/pprof], which registers its
// handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

// Package profile provides optional runtime profiling for the strata
// command.
//
// It integrates [github.com/pkg/profile] behind conditional compilation:
// profiling is available only when built with the "pprof" build tag. Without
// the tag, every operation is a no-op with zero runtime overhead.
//
// Supported modes (with the tag): allocs, block, clock, cpu, goroutine,
// heap, mem, mutex, thread, and trace. Use [Modes] to retrieve the list
// programmatically.
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g. cpu.pprof) and analyzed with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Package cli implements the strata command-line interface.
//
// The interface is declared as a [kong] grammar: global flag groups for
// logging and (build-tagged) profiling, and subcommands implemented in the
// nested cmd package. Logging flags take effect as they are parsed, so
// diagnostics emitted during command setup already honor the requested
// level and format.
//
// [kong]: https://github.com/alecthomas/kong
package cli

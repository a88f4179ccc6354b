// Package cmd implements the strata subcommands.
//
// Every command reads one structured table source (a file path or "-" for
// stdin), runs the parse/build pipeline from the table package, and writes
// its result to stdout. Recoverable parse errors never fail convert or tree;
// the check command exists to surface them.
package cmd

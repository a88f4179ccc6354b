// Package table parses a row-oriented, term/value "structured table" text
// format into a hierarchy of records, and converts that hierarchy into
// nested mapping structures.
//
// # Format
//
// Every row is an ordered sequence of string cells: the first cell names a
// term, the second carries its value, and any remaining cells are positional
// arguments. A term name may be dotted ("parent.child") to attach the row
// beneath an earlier record, and a leading dot (".child") elides the parent
// name, attaching the row beneath the most recently created record.
//
// A handful of term names are directives consumed by the parser itself
// rather than emitted as records:
//
//	Section a b c      declare parameter names for following rows' args
//	Term a b c         same as Section
//	Synonym alias name rewrite "alias" rows to "name" before parsing
//	TermValueName t k  store term t's value under key k instead of @value
//	Include path       splice another table (file or URL) into the stream
//
// # Pipeline
//
//	RowSource → Parser → Term stream → Build → Record tree → Convert → Value
//
// The Parser is a single forward pass over its RowSource: consuming the
// stream exhausts the source, and the stream is not restartable. Recoverable
// problems (malformed rows, synonym rows missing their target) accumulate on
// the parser and are available from [Parser.Errs]; an include target that
// cannot be opened is fatal and terminates the stream.
package table

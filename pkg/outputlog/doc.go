// Package outputlog moves rendered output lines in and out of text streams.
//
// # Format
//
// Each result line has the form
//
//	OUTPUT [<fragment> ...]
//
// where a numeric fragment is the number itself and a textual fragment is
// wrapped in single colons:
//
//	OUTPUT :Fresh Avacado: 13 :Fresh Avacado: 1.1
//
// Lines are separated by a single \n. A program under test may interleave
// result lines with any other output; only lines whose first token is
// exactly OUTPUT are result lines.
//
// # Writing
//
// A Writer owns the underlying io.Writer from a single goroutine, so result
// lines from concurrent producers never interleave mid-line. Lines appear in
// the order Write was called.
//
// # Scanning
//
// Scan filters a stream down to its result lines. Lines are returned
// verbatim apart from ANSI escape sequences, which are removed so that
// colored terminal output can be scanned too. Fragments are not parsed.
package outputlog

// Package control parses the Debian control-file stanza format used by dpkg
// and APT: the output of status queries (dpkg-query --status) and the
// contents of Packages index files.
//
// # Format
//
// A stanza is a run of "Name: value" field lines. A line starting with a
// space or tab continues the previous field's value; a continuation line
// containing only "." stands for a blank line inside the value. Stanzas are
// separated by blank lines.
//
// # API
//
// Parse reads a single stanza into a Record, ParseAll reads a whole document
// into an ordered sequence of Records. Field values are either Single (no
// continuation lines) or Multiple (one entry per physical line). Records
// re-serialize with WriteTo, preserving logical content but not the original
// line wrapping.
//
// The package performs no I/O and holds no state across calls; callers may
// parse different inputs concurrently.
package control

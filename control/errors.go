package control

import "fmt"

// Kind identifies the class of a parse failure.
type Kind int

const (
	// InvalidLine marks a non-blank, non-continuation line without a colon,
	// or with an empty field name before the colon.
	InvalidLine Kind = iota + 1
	// OrphanContinuation marks a continuation line appearing before any
	// field line in its stanza.
	OrphanContinuation
	// EmptyStanza marks a stanza run that produced no fields.
	EmptyStanza
	// EmptyInput marks all-blank input given to the single-record entry point.
	EmptyInput
)

func (k Kind) String() string {
	switch k {
	case InvalidLine:
		return "invalid line"
	case OrphanContinuation:
		return "continuation before any field"
	case EmptyStanza:
		return "stanza has no fields"
	case EmptyInput:
		return "no content"
	}
	return "unknown error"
}

// ParseError reports a parse failure with the 1-based line position of the
// offending input line. Line is 0 for failures not tied to a single line.
type ParseError struct {
	Kind Kind
	Line int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return e.Kind.String()
}

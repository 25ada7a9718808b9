package control

import "strings"

// Value holds the content of one field.
//
// A field that occupied a single physical line is Single; a field followed by
// continuation lines is Multiple, with one entry per line. A field is never a
// one-element Multiple.
type Value struct {
	text  string
	lines []string
}

// Single returns a one-line value. Callers normally receive Values from the
// parser; this constructor exists for building records programmatically.
func Single(text string) Value {
	return Value{text: text}
}

// Multiple returns a folded value with one entry per line. An empty string
// entry stands for a blank line (serialized as " .").
func Multiple(lines ...string) Value {
	if len(lines) == 0 {
		return Value{lines: []string{}}
	}
	return Value{lines: lines}
}

// IsMultiple reports whether the field had continuation lines.
func (v Value) IsMultiple() bool {
	return v.lines != nil
}

// Text returns the value as a single string. For Multiple values the lines
// are joined with newlines.
func (v Value) Text() string {
	if v.lines != nil {
		return strings.Join(v.lines, "\n")
	}
	return v.text
}

// Lines returns the individual lines of a Multiple value, or nil for a
// Single value. The returned slice must not be modified.
func (v Value) Lines() []string {
	return v.lines
}

// Equal reports whether two values have the same variant and content.
func (v Value) Equal(o Value) bool {
	if (v.lines == nil) != (o.lines == nil) {
		return false
	}
	if v.lines == nil {
		return v.text == o.text
	}
	if len(v.lines) != len(o.lines) {
		return false
	}
	for i := range v.lines {
		if v.lines[i] != o.lines[i] {
			return false
		}
	}
	return true
}

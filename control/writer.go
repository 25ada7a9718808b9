package control

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo serializes the record as a control stanza, applying the folding
// rule in reverse: Multiple values become continuation lines, empty entries
// become the " ." escape. Logical content is preserved, original line
// wrapping is not. This satisfies the io.WriterTo interface.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// String returns the stanza text for the record, terminated by a newline.
func (r Record) String() string {
	var b strings.Builder
	for _, name := range r.names {
		v := r.values[name]
		if !v.IsMultiple() {
			writeFieldLine(&b, name, v.text)
			continue
		}
		lines := v.lines
		first := ""
		if len(lines) > 0 {
			first = lines[0]
			lines = lines[1:]
		}
		writeFieldLine(&b, name, first)
		for _, l := range lines {
			if l == "" {
				b.WriteString(" .\n")
			} else {
				fmt.Fprintf(&b, " %s\n", l)
			}
		}
	}
	return b.String()
}

func writeFieldLine(b *strings.Builder, name, value string) {
	if value == "" {
		fmt.Fprintf(b, "%s:\n", name)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", name, value)
}

package control

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineField
	lineContinuation
	lineMalformed
)

// line is one classified physical line of input.
type line struct {
	kind lineKind
	num  int    // 1-based position in the full input
	name string // field name, lineField only
	text string // inline value or continuation text
}

// classifyLine decides whether a physical line starts a field, continues the
// previous one, separates stanzas, or is malformed.
func classifyLine(s string) line {
	if strings.TrimSpace(s) == "" {
		return line{kind: lineBlank}
	}
	if s[0] == ' ' || s[0] == '\t' {
		return line{kind: lineContinuation, text: strings.TrimLeft(s, " \t")}
	}
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return line{kind: lineMalformed}
	}
	name := strings.TrimSpace(s[:i])
	if name == "" {
		return line{kind: lineMalformed}
	}
	return line{kind: lineField, name: name, text: strings.TrimSpace(s[i+1:])}
}

// buildRecord assembles one Record from a contiguous run of non-blank lines.
func buildRecord(run []line) (Record, error) {
	var rec Record
	var name string
	var buf []string
	open := false

	flush := func() {
		if open {
			rec.Set(name, fold(buf))
		}
	}

	for _, ln := range run {
		switch ln.kind {
		case lineField:
			flush()
			name = ln.name
			buf = []string{ln.text}
			open = true
		case lineContinuation:
			if !open {
				return Record{}, &ParseError{Kind: OrphanContinuation, Line: ln.num}
			}
			buf = append(buf, ln.text)
		case lineMalformed:
			return Record{}, &ParseError{Kind: InvalidLine, Line: ln.num}
		}
	}
	flush()

	if rec.Len() == 0 {
		pos := 0
		if len(run) > 0 {
			pos = run[0].num
		}
		return Record{}, &ParseError{Kind: EmptyStanza, Line: pos}
	}
	return rec, nil
}

// fold applies the folding rule: a one-line buffer is a Single value, a
// longer buffer is a Multiple value with "."-only lines standing for blanks.
func fold(buf []string) Value {
	if len(buf) == 1 {
		return Single(buf[0])
	}
	lines := make([]string, len(buf))
	for i, l := range buf {
		if l == "." {
			l = ""
		}
		lines[i] = l
	}
	return Multiple(lines...)
}

// ParseAll parses a whole document of blank-line-separated stanzas into
// Records, in source order. Runs of consecutive blank lines collapse to a
// single separator and never produce empty records; all-blank input yields
// an empty sequence. The first malformed stanza fails the whole call.
func ParseAll(text string) ([]Record, error) {
	var recs []Record
	var run []line

	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		rec, err := buildRecord(run)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
		run = nil
		return nil
	}

	for i, raw := range strings.Split(text, "\n") {
		ln := classifyLine(raw)
		ln.num = i + 1
		if ln.kind == lineBlank {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		run = append(run, ln)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Parse parses the first stanza of text into a Record. It is meant for
// inputs known to contain exactly one record, such as the status stanza of a
// single package; trailing blank lines and any further stanzas are ignored.
// All-blank input fails with EmptyInput.
func Parse(text string) (Record, error) {
	var run []line
	for i, raw := range strings.Split(text, "\n") {
		ln := classifyLine(raw)
		ln.num = i + 1
		if ln.kind == lineBlank {
			if len(run) > 0 {
				break
			}
			continue
		}
		run = append(run, ln)
	}
	if len(run) == 0 {
		return Record{}, &ParseError{Kind: EmptyInput}
	}
	return buildRecord(run)
}

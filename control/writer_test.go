package control

import (
	"bytes"
	"strings"
	"testing"
)

func TestRecordString(t *testing.T) {
	var rec Record
	rec.Set("Package", Single("foo"))
	rec.Set("Description", Multiple("short", "long line one", "", "another"))
	rec.Set("Conffiles", Multiple("", "/etc/foo abc"))

	want := "Package: foo\n" +
		"Description: short\n" +
		" long line one\n" +
		" .\n" +
		" another\n" +
		"Conffiles:\n" +
		" /etc/foo abc\n"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRecordWriteTo(t *testing.T) {
	var rec Record
	rec.Set("Package", Single("foo"))

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}
	if buf.String() != "Package: foo\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

// Re-serializing a parsed record and parsing it again must reproduce the
// same values (value-level round-trip; byte-level identity is a non-goal).
func TestValueRoundTrip(t *testing.T) {
	inputs := []string{
		"Package: foo\nVersion: 1.0\n",
		"Package: foo\nDescription: short\n long line one\n .\n another\n",
		"Conffiles:\n /etc/pam.d/kde a33459447160292012baca99cb9820b3\n",
		"Empty:\nAfter: x\n",
	}
	for _, input := range inputs {
		rec, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		again, err := Parse(rec.String())
		if err != nil {
			t.Fatalf("re-Parse of %q failed: %v", rec.String(), err)
		}
		if len(again.Fields()) != len(rec.Fields()) {
			t.Fatalf("field count changed: %v vs %v", rec.Fields(), again.Fields())
		}
		for _, name := range rec.Fields() {
			v1, _ := rec.Get(name)
			v2, ok := again.Get(name)
			if !ok {
				t.Errorf("field %q lost in round-trip of %q", name, input)
				continue
			}
			if !v1.Equal(v2) {
				t.Errorf("field %q changed: %#v vs %#v", name, v1, v2)
			}
		}
	}
}

func TestRecordSetOverwrite(t *testing.T) {
	var rec Record
	rec.Set("A", Single("1"))
	rec.Set("B", Single("2"))
	rec.Set("A", Single("3"))

	if rec.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", rec.Len())
	}
	if v, _ := rec.Get("A"); v.Text() != "3" {
		t.Errorf("A = %q, want 3", v.Text())
	}
	if !strings.HasPrefix(rec.String(), "A: 3\n") {
		t.Errorf("A should keep first position: %q", rec.String())
	}
}

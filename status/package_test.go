package status

import (
	"strings"
	"testing"

	"github.com/pkgsmith/debctl/control"
)

const statusStanza = `Package: plasma-workspace
Status: install ok installed
Priority: optional
Section: kde
Installed-Size: 18248
Maintainer: Debian Qt/KDE Maintainers <debian-qt-kde@lists.debian.org>
Architecture: amd64
Multi-Arch: foreign
Version: 4:5.27.5-2
Depends: libc6 (>= 2.34), libkf5config5 (>= 5.98.0)
Conffiles:
 /etc/pam.d/kde a33459447160292012baca99cb9820b3
 /etc/xdg/autostart/klipper.desktop cc58958cfa37d7f4001e24e3de34abbd
Description: The KDE Plasma Workspace
 This package provides the interactive workspace.
 .
 It is part of the official KDE release.
Homepage: https://kde.org/plasma-desktop
`

func parseStanza(t *testing.T, text string) *Package {
	t.Helper()
	rec, err := control.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return FromRecord(rec)
}

func TestFromRecordStatusStanza(t *testing.T) {
	p := parseStanza(t, statusStanza)

	if p.Package != "plasma-workspace" {
		t.Errorf("Package = %q", p.Package)
	}
	if p.Status != "install ok installed" {
		t.Errorf("Status = %q", p.Status)
	}
	if p.Version != "4:5.27.5-2" {
		t.Errorf("Version = %q", p.Version)
	}
	if p.MultiArch != "foreign" {
		t.Errorf("MultiArch = %q", p.MultiArch)
	}
	if len(p.Depends) != 2 || p.Depends[0] != "libc6 (>= 2.34)" {
		t.Errorf("Depends = %v", p.Depends)
	}
	if len(p.Conffiles) != 2 || p.Conffiles[0] != "/etc/pam.d/kde a33459447160292012baca99cb9820b3" {
		t.Errorf("Conffiles = %v", p.Conffiles)
	}
	wantDesc := "The KDE Plasma Workspace\nThis package provides the interactive workspace.\n\nIt is part of the official KDE release."
	if p.Description != wantDesc {
		t.Errorf("Description = %q, want %q", p.Description, wantDesc)
	}
	if len(p.Extra) != 0 {
		t.Errorf("unexpected extra fields: %v", p.Extra)
	}
}

func TestFromRecordExtraFields(t *testing.T) {
	p := parseStanza(t, "Package: foo\nBugs: https://bugs.example.org\nOrigin: Ubuntu\n")
	if p.Extra["Bugs"] != "https://bugs.example.org" {
		t.Errorf("Extra[Bugs] = %q", p.Extra["Bugs"])
	}
	if p.Extra["Origin"] != "Ubuntu" {
		t.Errorf("Extra[Origin] = %q", p.Extra["Origin"])
	}
}

func TestFromRecordEssential(t *testing.T) {
	p := parseStanza(t, "Package: dpkg\nEssential: yes\n")
	if !p.Essential {
		t.Error("Essential should be true")
	}
	p = parseStanza(t, "Package: foo\nEssential: no\n")
	if p.Essential {
		t.Error("Essential should be false")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	p := parseStanza(t, statusStanza)
	again := FromRecord(p.Record())

	if again.Package != p.Package || again.Version != p.Version || again.Status != p.Status {
		t.Errorf("identity fields changed: %+v vs %+v", again, p)
	}
	if again.Description != p.Description {
		t.Errorf("Description changed: %q vs %q", again.Description, p.Description)
	}
	if len(again.Conffiles) != len(p.Conffiles) {
		t.Errorf("Conffiles changed: %v vs %v", again.Conffiles, p.Conffiles)
	}
	if len(again.Depends) != len(p.Depends) {
		t.Errorf("Depends changed: %v vs %v", again.Depends, p.Depends)
	}
}

func TestRecordOmitsEmptyFields(t *testing.T) {
	p := &Package{Package: "tiny", Version: "1.0", Architecture: "all"}
	text := p.Record().String()
	if strings.Contains(text, "Depends") || strings.Contains(text, "Description") {
		t.Errorf("empty fields serialized: %q", text)
	}
	if !strings.HasPrefix(text, "Package: tiny\n") {
		t.Errorf("unexpected stanza: %q", text)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b", []string{"a", "b"}},
		{" a , b , c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		got := splitList(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

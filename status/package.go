// Package status maps parsed control stanzas to typed dpkg package metadata.
//
// It covers the stanzas produced by dpkg-query --status and found in
// /var/lib/dpkg/status, as well as the control stanza embedded in .deb
// archives. Field semantics are not validated: values are carried as the
// stanza states them.
package status

import (
	"sort"
	"strings"

	"github.com/pkgsmith/debctl/control"
)

// Package holds the metadata stanza of one installed or available package.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html
type Package struct {
	// Package is the binary package name.
	Package string

	// Status is the dpkg selection/installation state line
	// (e.g. "install ok installed"). Only present in status stanzas.
	Status string

	// Priority represents the importance of the package (e.g. "optional").
	Priority string

	// Section classifies the package into a category (e.g. "utils").
	Section string

	// InstalledSize is the reported on-disk size in kilobytes, kept verbatim.
	InstalledSize string

	// Maintainer is "Name <email@address>".
	Maintainer string

	// Architecture is the hardware architecture, or "all".
	Architecture string

	// MultiArch is the multi-arch policy ("same", "foreign", ...).
	MultiArch string

	// Source is the source package name when it differs from Package.
	Source string

	// Version is the package version: [epoch:]upstream[-revision].
	Version string

	// Essential is true when the stanza declares "Essential: yes".
	Essential bool

	// Relationship fields, one element per comma-separated entry.
	Depends    []string
	PreDepends []string
	Recommends []string
	Suggests   []string
	Enhances   []string
	Conflicts  []string
	Breaks     []string
	Replaces   []string
	Provides   []string

	// Homepage is the upstream project URL.
	Homepage string

	// Description is the synopsis on the first line, followed by the
	// extended description with blank lines restored.
	Description string

	// Conffiles lists "path md5sum" entries from status stanzas.
	Conffiles []string

	// Extra holds any field not covered above, keyed by its exact name.
	Extra map[string]string
}

// FromRecord builds a typed Package from a parsed stanza.
func FromRecord(rec control.Record) *Package {
	p := &Package{Extra: make(map[string]string)}
	for _, name := range rec.Fields() {
		v, _ := rec.Get(name)
		p.set(name, v)
	}
	return p
}

// set assigns one field value to its typed slot, or to Extra for
// unrecognized fields.
func (p *Package) set(name string, v control.Value) {
	switch ControlField(name) {
	case FieldPackage:
		p.Package = v.Text()
	case FieldStatus:
		p.Status = v.Text()
	case FieldPriority:
		p.Priority = v.Text()
	case FieldSection:
		p.Section = v.Text()
	case FieldInstalledSize:
		p.InstalledSize = v.Text()
	case FieldMaintainer:
		p.Maintainer = v.Text()
	case FieldArchitecture:
		p.Architecture = v.Text()
	case FieldMultiArch:
		p.MultiArch = v.Text()
	case FieldSource:
		p.Source = v.Text()
	case FieldVersion:
		p.Version = v.Text()
	case FieldEssential:
		p.Essential = (v.Text() == "yes")
	case FieldDepends:
		p.Depends = splitList(v.Text())
	case FieldPreDepends:
		p.PreDepends = splitList(v.Text())
	case FieldRecommends:
		p.Recommends = splitList(v.Text())
	case FieldSuggests:
		p.Suggests = splitList(v.Text())
	case FieldEnhances:
		p.Enhances = splitList(v.Text())
	case FieldConflicts:
		p.Conflicts = splitList(v.Text())
	case FieldBreaks:
		p.Breaks = splitList(v.Text())
	case FieldReplaces:
		p.Replaces = splitList(v.Text())
	case FieldProvides:
		p.Provides = splitList(v.Text())
	case FieldHomepage:
		p.Homepage = v.Text()
	case FieldDescription:
		p.Description = v.Text()
	case FieldConffiles:
		p.Conffiles = entryLines(v)
	default:
		p.Extra[name] = v.Text()
	}
}

// Record converts the package back into a stanza, in the conventional field
// order. Only non-empty fields are emitted.
func (p *Package) Record() control.Record {
	var rec control.Record

	setText := func(f ControlField, val string) {
		if val != "" {
			rec.Set(string(f), control.Single(val))
		}
	}
	setList := func(f ControlField, items []string) {
		if len(items) > 0 {
			setText(f, strings.Join(items, ", "))
		}
	}

	setText(FieldPackage, p.Package)
	setText(FieldStatus, p.Status)
	setText(FieldPriority, p.Priority)
	setText(FieldSection, p.Section)
	setText(FieldInstalledSize, p.InstalledSize)
	setText(FieldMaintainer, p.Maintainer)
	setText(FieldArchitecture, p.Architecture)
	setText(FieldMultiArch, p.MultiArch)
	setText(FieldSource, p.Source)
	setText(FieldVersion, p.Version)
	if p.Essential {
		setText(FieldEssential, "yes")
	}

	setList(FieldDepends, p.Depends)
	setList(FieldPreDepends, p.PreDepends)
	setList(FieldRecommends, p.Recommends)
	setList(FieldSuggests, p.Suggests)
	setList(FieldEnhances, p.Enhances)
	setList(FieldConflicts, p.Conflicts)
	setList(FieldBreaks, p.Breaks)
	setList(FieldReplaces, p.Replaces)
	setList(FieldProvides, p.Provides)

	setText(FieldHomepage, p.Homepage)

	if len(p.Conffiles) > 0 {
		lines := append([]string{""}, p.Conffiles...)
		rec.Set(string(FieldConffiles), control.Multiple(lines...))
	}

	if p.Description != "" {
		lines := strings.Split(p.Description, "\n")
		if len(lines) == 1 {
			setText(FieldDescription, lines[0])
		} else {
			rec.Set(string(FieldDescription), control.Multiple(lines...))
		}
	}

	var extras []string
	for k := range p.Extra {
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		rec.Set(k, control.Single(p.Extra[k]))
	}

	return rec
}

// splitList splits a comma-separated relationship value, trimming whitespace
// from each element. It returns nil for an empty value.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var res []string
	for _, part := range strings.Split(s, ",") {
		res = append(res, strings.TrimSpace(part))
	}
	return res
}

// entryLines returns the non-empty lines of a folded value. A Single value
// yields at most one entry.
func entryLines(v control.Value) []string {
	var res []string
	if !v.IsMultiple() {
		if t := v.Text(); t != "" {
			res = append(res, t)
		}
		return res
	}
	for _, l := range v.Lines() {
		if l != "" {
			res = append(res, l)
		}
	}
	return res
}

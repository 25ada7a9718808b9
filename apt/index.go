// Package apt handles the repository-side artifacts built from control
// stanzas: Packages indices, Release files and their clearsigned InRelease
// form. It is a consumer of the core parser; all I/O stays here.
package apt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkgsmith/debctl/control"
	"github.com/pkgsmith/debctl/status"
)

// Entry is one stanza of a Packages index: the package's control metadata
// plus the index-only download fields.
//
// Reference: https://wiki.debian.org/DebianRepository/Format#Packages_Indices
type Entry struct {
	// Package is the typed control metadata of the entry.
	Package *status.Package

	// Filename is the path or URL of the .deb file relative to the
	// repository root.
	Filename string
	// Size is the size of the .deb file in bytes.
	Size int64
	// MD5sum, SHA1 and SHA256 are the file checksums, kept verbatim.
	MD5sum string
	SHA1   string
	SHA256 string
}

// ParseIndex parses the content of a Packages index into its entries, in
// source order. A single malformed stanza fails the whole call.
func ParseIndex(content string) ([]*Entry, error) {
	recs, err := control.ParseAll(content)
	if err != nil {
		return nil, fmt.Errorf("parsing Packages index: %w", err)
	}

	entries := make([]*Entry, 0, len(recs))
	for _, rec := range recs {
		e := &Entry{Package: status.FromRecord(rec)}
		e.Filename = takeExtra(e.Package, status.IdxFilename)
		e.MD5sum = takeExtra(e.Package, status.IdxMD5sum)
		e.SHA1 = takeExtra(e.Package, status.IdxSHA1)
		e.SHA256 = takeExtra(e.Package, status.IdxSHA256)
		if s := takeExtra(e.Package, status.IdxSize); s != "" {
			e.Size, _ = strconv.ParseInt(s, 10, 64)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// takeExtra removes an index-only field from the package's extra fields and
// returns its value, keeping the control metadata clean.
func takeExtra(p *status.Package, f status.IndexField) string {
	v := p.Extra[string(f)]
	delete(p.Extra, string(f))
	return v
}

// WriteIndex serializes entries as a Packages index. Each stanza is the
// package's control metadata followed by the index fields, terminated by a
// blank line.
func WriteIndex(w io.Writer, entries []*Entry) error {
	for _, e := range entries {
		rec := e.Package.Record()
		if e.Filename != "" {
			rec.Set(string(status.IdxFilename), control.Single(e.Filename))
		}
		if e.Size > 0 {
			rec.Set(string(status.IdxSize), control.Single(strconv.FormatInt(e.Size, 10)))
		}
		if e.MD5sum != "" {
			rec.Set(string(status.IdxMD5sum), control.Single(e.MD5sum))
		}
		if e.SHA1 != "" {
			rec.Set(string(status.IdxSHA1), control.Single(e.SHA1))
		}
		if e.SHA256 != "" {
			rec.Set(string(status.IdxSHA256), control.Single(e.SHA256))
		}
		if _, err := rec.WriteTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

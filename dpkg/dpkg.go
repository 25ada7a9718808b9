// Package dpkg supplies raw control text to the parser from the places a
// Debian system keeps it: the dpkg-query command, the dpkg status database
// and downloaded apt index files. It is the I/O boundary of the module; the
// parsing itself lives in the control package.
package dpkg

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkgsmith/debctl/apt"
	"github.com/pkgsmith/debctl/control"
	"github.com/pkgsmith/debctl/status"
)

// StatusFile is the default dpkg status database path.
const StatusFile = "/var/lib/dpkg/status"

// ListsDir is the default directory of downloaded apt index files.
const ListsDir = "/var/lib/apt/lists"

// Show queries the status stanza of one installed package by running
// dpkg-query --status and parsing its output.
func Show(ctx context.Context, name string) (*status.Package, error) {
	cmd := exec.CommandContext(ctx, "dpkg-query", "--status", name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("dpkg-query %s: %s", name, msg)
		}
		return nil, fmt.Errorf("dpkg-query %s: %w", name, err)
	}

	rec, err := control.Parse(string(out))
	if err != nil {
		return nil, fmt.Errorf("parsing dpkg-query output for %s: %w", name, err)
	}
	return status.FromRecord(rec), nil
}

// ReadStatus parses a dpkg status database from r into one package per
// stanza, in file order.
func ReadStatus(r io.Reader) ([]*status.Package, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	recs, err := control.ParseAll(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing status database: %w", err)
	}
	pkgs := make([]*status.Package, 0, len(recs))
	for _, rec := range recs {
		pkgs = append(pkgs, status.FromRecord(rec))
	}
	return pkgs, nil
}

// ReadStatusFile parses the dpkg status database at path.
func ReadStatusFile(path string) ([]*status.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStatus(f)
}

// ReadIndexDir parses every downloaded Packages index found in dir (files
// named *_Packages or *_Packages.gz, as apt stores them in ListsDir) and
// returns the concatenated entries.
func ReadIndexDir(dir string) ([]*apt.Entry, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []*apt.Entry
	for _, de := range names {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.HasSuffix(name, "_Packages") && !strings.HasSuffix(name, "_Packages.gz") {
			continue
		}
		got, err := readIndexFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading index %s: %w", name, err)
		}
		entries = append(entries, got...)
	}
	return entries, nil
}

func readIndexFile(path string) ([]*apt.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gzr.Close()
		r = gzr
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return apt.ParseIndex(string(content))
}

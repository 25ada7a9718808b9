package dpkg

import (
	"compress/gzip"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const statusDB = `Package: base-files
Status: install ok installed
Priority: required
Essential: yes
Version: 12.4
Architecture: amd64
Description: Debian base system miscellaneous files
 This package contains the basic filesystem hierarchy.

Package: zsync
Status: install ok installed
Priority: optional
Version: 0.6.2-5
Architecture: amd64
Description: client-side implementation of the rsync algorithm
`

func TestReadStatus(t *testing.T) {
	pkgs, err := ReadStatus(strings.NewReader(statusDB))
	if err != nil {
		t.Fatalf("ReadStatus failed: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(pkgs))
	}
	if pkgs[0].Package != "base-files" || !pkgs[0].Essential {
		t.Errorf("unexpected first package: %+v", pkgs[0])
	}
	if pkgs[1].Package != "zsync" || pkgs[1].Version != "0.6.2-5" {
		t.Errorf("unexpected second package: %+v", pkgs[1])
	}
}

func TestReadStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status")
	if err := os.WriteFile(path, []byte(statusDB), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	pkgs, err := ReadStatusFile(path)
	if err != nil {
		t.Fatalf("ReadStatusFile failed: %v", err)
	}
	if len(pkgs) != 2 {
		t.Errorf("expected 2 packages, got %d", len(pkgs))
	}
}

func TestReadIndexDir(t *testing.T) {
	index := "Package: pkg1\nVersion: 1.0\nArchitecture: amd64\nFilename: pool/pkg1.deb\nSize: 10\n"
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "example.org_dists_stable_main_binary-amd64_Packages"), []byte(index), 0644); err != nil {
		t.Fatalf("writing plain index: %v", err)
	}

	f, err := os.Create(filepath.Join(dir, "example.org_dists_stable_contrib_binary-amd64_Packages.gz"))
	if err != nil {
		t.Fatalf("creating gz index: %v", err)
	}
	gw := gzip.NewWriter(f)
	gw.Write([]byte(index))
	gw.Close()
	f.Close()

	// Unrelated files are skipped.
	if err := os.WriteFile(filepath.Join(dir, "example.org_dists_stable_InRelease"), []byte("junk"), 0644); err != nil {
		t.Fatalf("writing decoy: %v", err)
	}

	entries, err := ReadIndexDir(dir)
	if err != nil {
		t.Fatalf("ReadIndexDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Package.Package != "pkg1" || e.Filename != "pool/pkg1.deb" {
			t.Errorf("unexpected entry: %+v", e)
		}
	}
}

func TestShow(t *testing.T) {
	if _, err := exec.LookPath("dpkg-query"); err != nil {
		t.Skip("dpkg-query not installed")
	}
	pkg, err := Show(context.Background(), "dpkg")
	if err != nil {
		t.Skipf("dpkg status not queryable: %v", err)
	}
	if pkg.Package != "dpkg" {
		t.Errorf("Package = %q, want dpkg", pkg.Package)
	}
	if pkg.Version == "" {
		t.Error("Version is empty")
	}
}

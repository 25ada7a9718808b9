package status

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"

	"github.com/pkgsmith/debctl/control"
)

// ReadControl extracts the control stanza from a .deb stream and parses it
// into a typed Package. The .deb outer container is an AR archive whose
// control.tar (optionally gzipped) member carries the 'control' file.
func ReadControl(r io.Reader) (*Package, error) {
	text, err := extractControlText(r)
	if err != nil {
		return nil, err
	}
	rec, err := control.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing control stanza: %w", err)
	}
	return FromRecord(rec), nil
}

// extractControlText walks the AR members of a .deb stream looking for
// control.tar or control.tar.gz, then pulls the 'control' file out of it.
func extractControlText(r io.Reader) (string, error) {
	arR := ar.NewReader(r)
	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading ar header: %w", err)
		}

		if !strings.HasPrefix(header.Name, "control.tar") {
			continue
		}

		var tr *tar.Reader
		if strings.HasSuffix(strings.TrimSuffix(header.Name, "/"), ".gz") {
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", header.Name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		} else {
			tr = tar.NewReader(arR)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading control tar: %w", err)
			}
			if filepath.Base(th.Name) == "control" {
				var b strings.Builder
				if _, err := io.Copy(&b, tr); err != nil {
					return "", fmt.Errorf("reading control: %w", err)
				}
				return b.String(), nil
			}
		}
	}
	return "", fmt.Errorf("control file not found")
}

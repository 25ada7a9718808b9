package apt

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchIndex downloads a Packages index from url and parses it. URLs ending
// in .gz are transparently decompressed. The caller composes the URL
// (flat: <base>/Packages.gz, hierarchical:
// <base>/dists/<suite>/<component>/binary-<arch>/Packages.gz).
func FetchIndex(url string) ([]*Entry, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	var r io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gzr.Close()
		r = gzr
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return ParseIndex(string(content))
}

// FetchRelease downloads and parses a Release file.
func FetchRelease(url string) (*ArchiveInfo, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return ParseRelease(string(content))
}

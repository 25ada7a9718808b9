package apt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"

	"github.com/pkgsmith/debctl/control"
)

// ArchiveInfo holds the repository metadata carried by a Release file.
// A Release file is a single control stanza.
//
// Reference: https://wiki.debian.org/DebianRepository/Format#Release_file
type ArchiveInfo struct {
	Origin               string
	Label                string
	Suite                string
	Version              string
	Codename             string
	Date                 string
	ValidUntil           string
	Architectures        string
	Components           string
	Description          string
	NotAutomatic         string
	ButAutomaticUpgrades string
	AcquireByHash        string

	// SHA256 lists the checksummed index files of the repository.
	SHA256 []FileEntry
}

// FileEntry is one checksum line of a Release file: hash, size and path of
// an index file.
type FileEntry struct {
	Hash string
	Size int64
	Path string
}

// ParseRelease parses the content of a Release file. Trailing content after
// the first stanza is ignored.
func ParseRelease(content string) (*ArchiveInfo, error) {
	rec, err := control.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing Release: %w", err)
	}

	info := &ArchiveInfo{}
	text := func(name string) string {
		v, _ := rec.Get(name)
		return v.Text()
	}
	info.Origin = text("Origin")
	info.Label = text("Label")
	info.Suite = text("Suite")
	info.Version = text("Version")
	info.Codename = text("Codename")
	info.Date = text("Date")
	info.ValidUntil = text("Valid-Until")
	info.Architectures = text("Architectures")
	info.Components = text("Components")
	info.Description = text("Description")
	info.NotAutomatic = text("NotAutomatic")
	info.ButAutomaticUpgrades = text("ButAutomaticUpgrades")
	info.AcquireByHash = text("Acquire-By-Hash")

	if v, ok := rec.Get("SHA256"); ok {
		info.SHA256 = parseFileEntries(v)
	}
	return info, nil
}

// parseFileEntries reads the "hash size path" lines of a checksum field.
// Lines that do not have the three columns are skipped.
func parseFileEntries(v control.Value) []FileEntry {
	var entries []FileEntry
	lines := v.Lines()
	if lines == nil {
		lines = []string{v.Text()}
	}
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) != 3 {
			continue
		}
		size, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, FileEntry{Hash: fields[0], Size: size, Path: fields[2]})
	}
	return entries
}

// ParseInRelease decodes a clearsigned InRelease file and parses the
// embedded Release stanza. When keyring is non-nil the signature is
// verified against it and a bad signature fails the call; a nil keyring
// skips verification.
func ParseInRelease(content string, keyring openpgp.EntityList) (*ArchiveInfo, error) {
	block, _ := clearsign.Decode([]byte(content))
	if block == nil {
		return nil, fmt.Errorf("no clearsigned message found")
	}
	if keyring != nil {
		if _, err := block.VerifySignature(keyring, nil); err != nil {
			return nil, fmt.Errorf("verifying InRelease signature: %w", err)
		}
	}
	return ParseRelease(string(block.Plaintext))
}

// SignRelease clearsigns Release content with the provided ASCII-armored
// PGP private key, producing InRelease content.
func SignRelease(release []byte, key string) ([]byte, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(key))
	if err != nil {
		return nil, err
	}
	var signer *openpgp.Entity
	for _, e := range entities {
		if e.PrivateKey != nil {
			signer = e
			break
		}
	}
	if signer == nil {
		return nil, fmt.Errorf("no private key found")
	}

	var out bytes.Buffer
	w, err := clearsign.Encode(&out, signer.PrivateKey, nil)
	if err != nil {
		return nil, err
	}
	w.Write(release)
	w.Close()
	return out.Bytes(), nil
}

// WriteRelease serializes the archive metadata as a Release stanza.
func WriteRelease(info *ArchiveInfo) []byte {
	var rec control.Record
	set := func(name, val string) {
		if val != "" {
			rec.Set(name, control.Single(val))
		}
	}
	set("Origin", info.Origin)
	set("Label", info.Label)
	set("Suite", info.Suite)
	set("Version", info.Version)
	set("Codename", info.Codename)
	set("Date", info.Date)
	set("Valid-Until", info.ValidUntil)
	set("Architectures", info.Architectures)
	set("Components", info.Components)
	set("Description", info.Description)
	set("NotAutomatic", info.NotAutomatic)
	set("ButAutomaticUpgrades", info.ButAutomaticUpgrades)
	set("Acquire-By-Hash", info.AcquireByHash)

	if len(info.SHA256) > 0 {
		lines := []string{""}
		for _, e := range info.SHA256 {
			lines = append(lines, fmt.Sprintf("%s %d %s", e.Hash, e.Size, e.Path))
		}
		rec.Set("SHA256", control.Multiple(lines...))
	}
	return []byte(rec.String())
}

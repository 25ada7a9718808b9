// debctl inspects Debian package metadata: status stanzas of installed
// packages, dpkg status databases, Packages indices and Release files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"gopkg.in/yaml.v3"

	"github.com/pkgsmith/debctl/apt"
	"github.com/pkgsmith/debctl/dpkg"
	"github.com/pkgsmith/debctl/status"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "show":
		runShow(os.Args[2:])
	case "list":
		runList(os.Args[2:])
	case "index":
		runIndex(os.Args[2:])
	case "release":
		runRelease(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the help message to stdout.
func printUsage() {
	fmt.Println("Usage: debctl <command> [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  show     Show the status stanza of installed packages")
	fmt.Println("  list     List packages from a dpkg status database")
	fmt.Println("  index    Inspect Packages indices (files, dirs or URLs)")
	fmt.Println("  release  Inspect a Release or InRelease file")
}

// runShow queries dpkg for the named packages and prints their metadata.
func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "o", "text", "Output format (text, json, yaml)")
	fs.Parse(args)

	if fs.NArg() == 0 {
		log.Fatal("show requires at least one package name")
	}

	var pkgs []*status.Package
	for _, name := range fs.Args() {
		pkg, err := dpkg.Show(context.Background(), name)
		if err != nil {
			log.Fatalf("Failed to query %s: %v", name, err)
		}
		pkgs = append(pkgs, pkg)
	}

	if format == "text" {
		for i, pkg := range pkgs {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(pkg.Record().String())
		}
		return
	}
	encode(format, pkgs)
}

// runList reads a dpkg status database and lists its packages.
func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var statusPath string
	fs.StringVar(&statusPath, "status", dpkg.StatusFile, "Path to the dpkg status database")
	var format string
	fs.StringVar(&format, "o", "text", "Output format (text, json, yaml)")
	fs.Parse(args)

	pkgs, err := dpkg.ReadStatusFile(statusPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", statusPath, err)
	}

	if format == "text" {
		for _, pkg := range pkgs {
			fmt.Printf("%s\t%s\t%s\n", pkg.Package, pkg.Version, pkg.Architecture)
		}
		return
	}
	encode(format, pkgs)
}

// runIndex parses Packages indices from the configured sources and prints
// their entries.
func runIndex(args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	var confPath string
	fs.StringVar(&confPath, "config", "", "YAML file listing index sources")
	var format string
	fs.StringVar(&format, "o", "text", "Output format (text, json, yaml)")
	fs.Parse(args)

	sources := fs.Args()
	if confPath != "" {
		conf, err := decodeConfig(confPath)
		if err != nil {
			log.Fatalf("Failed to read config %s: %v", confPath, err)
		}
		sources = append(sources, conf.Sources...)
	}
	if len(sources) == 0 {
		log.Fatal("index requires sources (arguments or -config)")
	}

	var entries []*apt.Entry
	for _, src := range sources {
		got, err := loadIndexSource(src)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", src, err)
		}
		entries = append(entries, got...)
	}

	if format == "text" {
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\t%s\n", e.Package.Package, e.Package.Version, e.Package.Architecture, e.Filename)
		}
		return
	}
	encode(format, entries)
}

// runRelease parses a Release or clearsigned InRelease file.
func runRelease(args []string) {
	fs := flag.NewFlagSet("release", flag.ExitOnError)
	var keyringPath string
	fs.StringVar(&keyringPath, "keyring", "", "Armored public keyring for InRelease verification")
	var format string
	fs.StringVar(&format, "o", "text", "Output format (text, json, yaml)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("release requires exactly one file argument")
	}
	content, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read %s: %v", fs.Arg(0), err)
	}

	var info *apt.ArchiveInfo
	if strings.Contains(string(content), "-----BEGIN PGP SIGNED MESSAGE-----") {
		var keyring openpgp.EntityList
		if keyringPath != "" {
			f, err := os.Open(keyringPath)
			if err != nil {
				log.Fatalf("Failed to open keyring: %v", err)
			}
			keyring, err = openpgp.ReadArmoredKeyRing(f)
			f.Close()
			if err != nil {
				log.Fatalf("Failed to read keyring: %v", err)
			}
		}
		info, err = apt.ParseInRelease(string(content), keyring)
	} else {
		info, err = apt.ParseRelease(string(content))
	}
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", fs.Arg(0), err)
	}

	if format == "text" {
		os.Stdout.Write(apt.WriteRelease(info))
		return
	}
	encode(format, info)
}

// loadIndexSource loads entries from one source: a URL, a directory of apt
// list files, or a Packages file.
func loadIndexSource(src string) ([]*apt.Entry, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return apt.FetchIndex(src)
	}
	st, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return dpkg.ReadIndexDir(src)
	}
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	return apt.ParseIndex(string(content))
}

// Config lists the index sources for the index subcommand.
type Config struct {
	Sources []string
}

// decodeConfig reads the YAML source list.
func decodeConfig(path string) (*Config, error) {
	type yamlConfig struct {
		Sources []string `yaml:"sources"`
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto yamlConfig
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return &Config{Sources: dto.Sources}, nil
}

// encode writes v to stdout in the requested structured format.
func encode(format string, v interface{}) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		fmt.Print(string(data))
	default:
		log.Fatalf("Unknown output format %q", format)
	}
}

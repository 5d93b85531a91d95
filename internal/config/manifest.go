// Package config loads a project's svlang.toml manifest: the include
// directories, predefined macros, and elaboration settings a `check` run
// applies when the caller didn't override them on the command line.
//
// Find walks up from a start directory looking for the manifest file;
// Load decodes it with BurntSushi/toml and checks the sections a valid
// manifest must define. The schema covers a design's file list and
// elaboration knobs rather than a single entry-point script.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mohamed/svlang/internal/compilation"
)

const ManifestName = "svlang.toml"

// Manifest is a decoded svlang.toml plus the filesystem location it was
// found at.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is svlang.toml's schema.
type Config struct {
	Package   PackageConfig   `toml:"package"`
	Sources   SourcesConfig   `toml:"sources"`
	Elaborate ElaborateConfig `toml:"elaborate"`
}

// PackageConfig is the [package] table.
type PackageConfig struct {
	Name string `toml:"name"`
}

// SourcesConfig is the [sources] table: the file list and include
// directories a `check` run without explicit file arguments falls back
// to.
type SourcesConfig struct {
	Files   []string `toml:"files"`
	Include []string `toml:"include"`
	Defines []string `toml:"defines"`
}

// ElaborateConfig is the [elaborate] table, mapped directly onto
// internal/compilation.Config's fields.
type ElaborateConfig struct {
	Top              []string `toml:"top"`
	MaxInstanceDepth int      `toml:"max_instance_depth"`
	DefaultNetType   string   `toml:"default_nettype"`
	TimeUnit         string   `toml:"time_unit"`
	TimePrecision    string   `toml:"time_precision"`
}

// Find walks upward from startDir looking for svlang.toml, the same
// nearest-ancestor search findSurgeToml performs.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest svlang.toml above startDir. ok is
// false (with a nil error) when no manifest was found at all.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

func decode(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// ResolveFiles expands the manifest's [sources].files entries (relative
// to Root) into absolute paths, matching resolveProjectRunTarget's
// manifest-relative resolution.
func (m *Manifest) ResolveFiles() []string {
	out := make([]string, len(m.Config.Sources.Files))
	for i, f := range m.Config.Sources.Files {
		out[i] = filepath.Join(m.Root, filepath.FromSlash(f))
	}
	return out
}

// CompilationConfig maps the [elaborate] table onto a
// compilation.Config, leaving zero fields for compilation.Config's own
// defaults to fill in.
func (e ElaborateConfig) CompilationConfig() compilation.Config {
	return compilation.Config{
		MaxInstanceDepth: e.MaxInstanceDepth,
		DefaultNetType:   e.DefaultNetType,
		TimeUnit:         e.TimeUnit,
		TimePrecision:    e.TimePrecision,
	}
}

// DefaultManifest returns a minimal svlang.toml for a freshly initialized
// project.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`# svlang project manifest
[package]
name = "%s"

[sources]
files = ["top.sv"]
include = []
defines = []

[elaborate]
top = ["top"]
max_instance_depth = 1000
default_nettype = "wire"
`, name)
}

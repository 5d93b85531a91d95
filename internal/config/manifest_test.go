package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, DefaultManifest("demo"))

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find a manifest above %s", nested)
	}
	want := filepath.Join(root, ManifestName)
	if path != want {
		t.Fatalf("Find: got %s, want %s", path, want)
	}
}

func TestFindReturnsFalseWithNoManifest(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest to be found")
	}
}

func TestLoadDecodesSourcesAndElaborate(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[package]
name = "demo"

[sources]
files = ["top.sv", "leaf.sv"]
include = ["vendor"]
defines = ["SIM"]

[elaborate]
top = ["top"]
max_instance_depth = 64
default_nettype = "none"
`)

	manifest, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("unexpected package name: %q", manifest.Config.Package.Name)
	}
	files := manifest.ResolveFiles()
	if len(files) != 2 || files[0] != filepath.Join(dir, "top.sv") {
		t.Fatalf("unexpected resolved files: %+v", files)
	}
	cc := manifest.Config.Elaborate.CompilationConfig()
	if cc.MaxInstanceDepth != 64 || cc.DefaultNetType != "none" {
		t.Fatalf("unexpected compilation config: %+v", cc)
	}
}

func TestLoadRejectsManifestMissingPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\n")

	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected an error for a manifest missing [package].name")
	}
}

func TestDefaultManifestDecodesCleanly(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, DefaultManifest("widget"))

	manifest, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load(DefaultManifest): ok=%v err=%v", ok, err)
	}
	if manifest.Config.Package.Name != "widget" {
		t.Fatalf("unexpected package name: %q", manifest.Config.Package.Name)
	}
	if len(manifest.Config.Sources.Files) != 1 || manifest.Config.Sources.Files[0] != "top.sv" {
		t.Fatalf("unexpected default sources: %+v", manifest.Config.Sources)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cflow/internal/project"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[target]
triple = "x86_64-sysv"

[output]
path = "build/out.ir"
`)

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Target.Triple != "x86_64-sysv" {
		t.Fatalf("unexpected triple: %q", m.Config.Target.Triple)
	}
	if got, want := ResolveOutputPath(m), filepath.Join(dir, "build/out.ir"); got != want {
		t.Fatalf("ResolveOutputPath = %q, want %q", got, want)
	}
}

func TestLoadWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[target]
triple = "x86_64-sysv"

[output]
path = "out.ir"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Fatalf("expected manifest root %q, got %q", root, m.Root)
	}
}

func TestLoadNoManifestIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error when no manifest exists, got %v", err)
	}
	if ok || m != nil {
		t.Fatalf("expected ok=false, nil manifest, got ok=%v m=%+v", ok, m)
	}
}

func TestDecodeRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing target table", body: "[output]\npath = \"out.ir\"\n"},
		{name: "missing triple", body: "[target]\n\n[output]\npath = \"out.ir\"\n"},
		{name: "missing output table", body: "[target]\ntriple = \"x86_64-sysv\"\n"},
		{name: "blank output path", body: "[target]\ntriple = \"x86_64-sysv\"\n\n[output]\npath = \"  \"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.body)
			if _, err := decode(filepath.Join(dir, project.ManifestName)); err == nil {
				t.Fatalf("expected an error for %s", tt.name)
			}
		})
	}
}

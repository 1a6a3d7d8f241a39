// Package config loads cflow.toml, the project-level manifest that picks a
// target triple and an output path. This is the "CLI / environment" surface
// the lowering core never touches directly — only cmd/cflow reads it.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cflow/internal/project"
)

// Manifest is a loaded cflow.toml together with the directory it came from.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the decoded shape of cflow.toml.
type Config struct {
	Target targetConfig `toml:"target"`
	Output outputConfig `toml:"output"`
}

type targetConfig struct {
	Triple string `toml:"triple"`
}

type outputConfig struct {
	Path string `toml:"path"`
}

// Load walks up from startDir and decodes the nearest cflow.toml, if any.
// ok is false (with a nil error) when no manifest is found; callers that
// require one (the CLI, absent explicit --arch/--out flags) treat that as
// the "no project" case and fall back to flag defaults.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := project.FindManifest(startDir)
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
	if !meta.IsDefined("target") {
		return Config{}, fmt.Errorf("%s: missing [target]", path)
	}
	if !meta.IsDefined("target", "triple") || strings.TrimSpace(cfg.Target.Triple) == "" {
		return Config{}, fmt.Errorf("%s: missing [target].triple", path)
	}
	if !meta.IsDefined("output") {
		return Config{}, fmt.Errorf("%s: missing [output]", path)
	}
	if !meta.IsDefined("output", "path") || strings.TrimSpace(cfg.Output.Path) == "" {
		return Config{}, fmt.Errorf("%s: missing [output].path", path)
	}
	return cfg, nil
}

// ResolveOutputPath returns the manifest's output path, resolved relative to
// the manifest's own directory so it behaves the same regardless of the
// caller's working directory.
func ResolveOutputPath(m *Manifest) string {
	if m == nil {
		return ""
	}
	p := filepath.FromSlash(strings.TrimSpace(m.Config.Output.Path))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

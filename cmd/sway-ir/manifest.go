package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noSwayTomlMessage = "no sway.toml found\nplease list the files explicitly, e.g.:\n  sway-ir inspect src/main.sw"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Inspect inspectConfig `toml:"inspect"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type inspectConfig struct {
	Files []string `toml:"files"`
}

func findSwayToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sway.toml")
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

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findSwayToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

// SourcePaths resolves the manifest's [inspect] file list against the
// manifest's directory.
func (m *projectManifest) SourcePaths() []string {
	out := make([]string, 0, len(m.Config.Inspect.Files))
	for _, f := range m.Config.Inspect.Files {
		if filepath.IsAbs(f) {
			out = append(out, f)
			continue
		}
		out = append(out, filepath.Join(m.Root, f))
	}
	return out
}

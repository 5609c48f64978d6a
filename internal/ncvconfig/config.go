// Copyright 2026 The Nocesave Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package ncvconfig loads cmd/nocesave's optional on-disk preferences
// file. It is read with gopkg.in/yaml.v3, the only serialization library
// needed besides the wire codec's own binary format.
package ncvconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds cmd/nocesave's persisted user preferences.
type Config struct {
	// SaveDir is the last directory a save was opened from or saved to.
	SaveDir string `yaml:"saveDir"`

	// Pretty toggles indented JSON for "nocesave dump".
	Pretty bool `yaml:"pretty"`

	// BackupBeforeWrite toggles writing a .bak.lz4 copy of a save before
	// an in-place "nocesave set" mutates it.
	BackupBeforeWrite bool `yaml:"backupBeforeWrite"`

	// ExportFormat names a default serialization ("json" or "yaml"). It is
	// stored and loaded only; "nocesave dump" always prints JSON and has no
	// format flag.
	ExportFormat string `yaml:"exportFormat"`
}

// Default returns the preferences cmd/nocesave falls back to when no
// config file exists.
func Default() Config {
	return Config{
		Pretty:            true,
		BackupBeforeWrite: true,
		ExportFormat:      "json",
	}
}

// DefaultPath returns the platform home directory's .nocesaverc.yaml,
// the file Load reads when no explicit path is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nocesaverc.yaml"), nil
}

// Load reads and parses the YAML config file at path, layering it over
// Default(). A missing file is not an error: Load returns Default()
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating or truncating it.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

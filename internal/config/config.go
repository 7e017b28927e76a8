// Package config loads modlint.toml, the project-level configuration file.
// The file is discovered by walking up from the start directory, so running
// the tool anywhere inside a project picks up the project's settings.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"modlint/internal/diag"
)

const FileName = "modlint.toml"

type Config struct {
	Lint   LintConfig   `toml:"lint"`
	Output OutputConfig `toml:"output"`
}

type LintConfig struct {
	// Disable lists rule IDs ("E1307") that must not run.
	Disable        []string `toml:"disable"`
	MaxDiagnostics int      `toml:"max-diagnostics"`
	// Jobs caps parallel workers for directory runs; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty|short|json
	Color  string `toml:"color"`  // auto|on|off
}

// Default returns the configuration used when no modlint.toml exists.
func Default() Config {
	return Config{
		Lint: LintConfig{
			MaxDiagnostics: 100,
		},
		Output: OutputConfig{
			Format: "pretty",
			Color:  "auto",
		},
	}
}

// Find walks up from startDir looking for modlint.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
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

// Load decodes and validates the file at path, filling in defaults for
// anything left unset.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, key.String())
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	switch c.Output.Format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("%s: [output].format must be pretty|short|json, got %q", path, c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [output].color must be auto|on|off, got %q", path, c.Output.Color)
	}
	if c.Lint.MaxDiagnostics <= 0 {
		return fmt.Errorf("%s: [lint].max-diagnostics must be positive", path)
	}
	if c.Lint.Jobs < 0 {
		return fmt.Errorf("%s: [lint].jobs must not be negative", path)
	}
	for _, id := range c.Lint.Disable {
		if _, ok := diag.LintCodeForID(id); !ok {
			return fmt.Errorf("%s: [lint].disable references unknown rule %q", path, id)
		}
	}
	return nil
}

// DisabledCodes resolves the disable list into diagnostic codes.
func (c Config) DisabledCodes() map[diag.Code]bool {
	out := make(map[diag.Code]bool, len(c.Lint.Disable))
	for _, id := range c.Lint.Disable {
		if code, ok := diag.LintCodeForID(id); ok {
			out[code] = true
		}
	}
	return out
}

// Fingerprint returns a stable digest of everything that influences check
// results. The disk cache keys on it so that config edits invalidate
// cached findings.
func (c Config) Fingerprint() string {
	disabled := make([]string, len(c.Lint.Disable))
	copy(disabled, c.Lint.Disable)
	sort.Strings(disabled)

	h := sha256.New()
	fmt.Fprintf(h, "disable=%s;max=%d", strings.Join(disabled, ","), c.Lint.MaxDiagnostics)
	return hex.EncodeToString(h.Sum(nil))
}

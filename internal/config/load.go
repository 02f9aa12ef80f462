package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"unimath/internal/charmap"
	"unimath/internal/diag"
)

type fileConfig struct {
	Input   inputSection              `toml:"input"`
	Fonts   map[string]toml.Primitive `toml:"fonts"`
	Symbols map[string]string         `toml:"symbols"`
}

type inputSection struct {
	Triggers       []string `toml:"triggers"`
	DoNotWarn      string   `toml:"do_not_warn"`
	DiagnosticCode string   `toml:"diagnostic_code"`
	RequireTrigger bool     `toml:"require_trigger"`
}

const legacyKey = "legacy"

// Find walks up from startDir to locate unimath.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

// Discover loads explicit when it is set, otherwise the nearest unimath.toml
// above startDir, otherwise the defaults.
func Discover(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, err := Find(startDir)
	if errors.Is(err, ErrNoConfig) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load reads a configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML text on top of the defaults. Unknown keys are errors.
func Parse(text string) (*Config, error) {
	var file fileConfig
	meta, err := toml.Decode(text, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg := Default()
	var errs []error

	if meta.IsDefined("input", "triggers") {
		cfg.Triggers = file.Input.Triggers
	}
	if meta.IsDefined("input", "do_not_warn") {
		cfg.DoNotWarn = file.Input.DoNotWarn
	}
	if meta.IsDefined("input", "diagnostic_code") {
		cfg.DiagnosticCode = diag.Code(strings.TrimSpace(file.Input.DiagnosticCode))
	}
	cfg.RequireTrigger = file.Input.RequireTrigger

	braced := make(map[charmap.Font][]string)
	legacy := make(map[charmap.Font][]string)
	keys := make([]string, 0, len(file.Fonts))
	for key := range file.Fonts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		prim := file.Fonts[key]
		if key == legacyKey {
			var table map[string][]string
			if err := meta.PrimitiveDecode(prim, &table); err != nil {
				errs = append(errs, fmt.Errorf("[fonts.legacy]: %w", err))
				continue
			}
			errs = appendFontEntries(errs, legacy, table, "[fonts.legacy]")
			continue
		}
		var prefixes []string
		if err := meta.PrimitiveDecode(prim, &prefixes); err != nil {
			errs = append(errs, fmt.Errorf("[fonts].%s: %w", key, err))
			continue
		}
		errs = appendFontEntries(errs, braced, map[string][]string{key: prefixes}, "[fonts]")
	}
	cfg.Braced = overrideFonts(cfg.Braced, braced)
	cfg.Legacy = overrideFonts(cfg.Legacy, legacy)

	for name, value := range file.Symbols {
		cfg.Symbols[name] = value
	}

	for _, key := range meta.Undecoded() {
		// Primitive values are reported undecoded until PrimitiveDecode
		// runs, and those were handled above.
		if len(key) > 0 && key[0] == "fonts" {
			continue
		}
		errs = append(errs, fmt.Errorf("unknown key %q", key.String()))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func appendFontEntries(errs []error, dst map[charmap.Font][]string, src map[string][]string, section string) []error {
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := charmap.ParseFont(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
			continue
		}
		dst[f] = append(dst[f], src[name]...)
	}
	return errs
}

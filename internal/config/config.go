// Package config loads unimath.toml and turns it into the tables the engine
// is built from.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"unimath/internal/charmap"
	"unimath/internal/diag"
	"unimath/internal/resolve"
	"unimath/internal/scan"
	"unimath/internal/segment"
	"unimath/internal/symbols"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "unimath.toml"

// DefaultTrigger starts a command when nothing else is configured.
const DefaultTrigger = `\`

// ErrNoConfig is returned by Find when no configuration file exists.
var ErrNoConfig = errors.New("no " + FileName + " found")

// Config is the resolved configuration. A zero Config is not usable; start
// from Default or Load.
type Config struct {
	// Path is the file the configuration was read from, empty for defaults.
	Path string

	Triggers       []string
	DoNotWarn      string
	DiagnosticCode diag.Code
	RequireTrigger bool

	Braced  []resolve.Command
	Legacy  []resolve.Command
	Symbols map[string]string // user additions over the builtin table
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Triggers:       []string{DefaultTrigger},
		DoNotWarn:      scan.DefaultDoNotWarn,
		DiagnosticCode: diag.CodeConvertible,
		Braced:         resolve.DefaultBraced(),
		Legacy:         resolve.DefaultLegacy(),
		Symbols:        map[string]string{},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Triggers = slices.Clone(c.Triggers)
	out.Braced = slices.Clone(c.Braced)
	out.Legacy = slices.Clone(c.Legacy)
	out.Symbols = maps.Clone(c.Symbols)
	if out.Symbols == nil {
		out.Symbols = map[string]string{}
	}
	return &out
}

// Validate reports every hard error joined together, plus warnings for
// configurations that work but are ambiguous.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error
	if terr := segment.TriggerSet(c.Triggers).Validate(); terr != nil {
		errs = append(errs, fmt.Errorf("[input].triggers: %w", terr))
	}
	if c.DiagnosticCode == "" {
		errs = append(errs, errors.New("[input].diagnostic_code: must not be empty"))
	}
	for _, cmd := range c.Braced {
		if cmd.Prefix == "" {
			errs = append(errs, fmt.Errorf("[fonts].%s: empty command", cmd.Font))
		}
	}
	for _, cmd := range c.Legacy {
		if cmd.Prefix == "" {
			errs = append(errs, fmt.Errorf("[fonts.legacy].%s: empty prefix", cmd.Font))
		}
	}
	for name, value := range c.Symbols {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("[symbols]: empty command name"))
		} else if value == "" {
			errs = append(errs, fmt.Errorf("[symbols].%s: empty value", name))
		}
	}
	for _, conflict := range c.Fonts().Conflicts() {
		warnings = append(warnings, conflict.String())
	}
	seen := make(map[string]bool, len(c.Triggers))
	for _, t := range c.Triggers {
		if seen[t] {
			warnings = append(warnings, fmt.Sprintf("trigger %q listed more than once", t))
		}
		seen[t] = true
	}
	return warnings, errors.Join(errs...)
}

// Fonts builds the font command table.
func (c *Config) Fonts() *resolve.Table {
	return resolve.NewTable(c.Braced, c.Legacy)
}

// SymbolTable builds the whole-word command table.
func (c *Config) SymbolTable() *symbols.Table {
	return symbols.New(c.Symbols)
}

// ScanOptions returns the scanner settings.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		Triggers:       slices.Clone(c.Triggers),
		DoNotWarn:      c.DoNotWarn,
		Code:           c.DiagnosticCode,
		RequireTrigger: c.RequireTrigger,
	}
}

// Fingerprint identifies everything that influences scan results. Two
// configurations with equal fingerprints produce equal diagnostics.
func (c *Config) Fingerprint() string {
	h := sha256.New()
	field := func(s string) {
		fmt.Fprintf(h, "%d:%s;", len(s), s)
	}
	for _, t := range c.Triggers {
		field("t" + t)
	}
	field("w" + c.DoNotWarn)
	field("c" + string(c.DiagnosticCode))
	field(fmt.Sprintf("r%t", c.RequireTrigger))
	for _, cmd := range c.Braced {
		field("b" + cmd.Font.String() + "=" + cmd.Prefix)
	}
	for _, cmd := range c.Legacy {
		field("l" + cmd.Font.String() + "=" + cmd.Prefix)
	}
	names := slices.Collect(maps.Keys(c.Symbols))
	sort.Strings(names)
	for _, name := range names {
		field("s" + name + "=" + c.Symbols[name])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// overrideFonts replaces the commands of every font present in overrides,
// keeping the position of the font's first default entry. Fonts with no
// default entry are appended in font order.
func overrideFonts(defaults []resolve.Command, overrides map[charmap.Font][]string) []resolve.Command {
	out := make([]resolve.Command, 0, len(defaults))
	placed := make(map[charmap.Font]bool, len(overrides))
	for _, cmd := range defaults {
		prefixes, ok := overrides[cmd.Font]
		if !ok {
			out = append(out, cmd)
			continue
		}
		if placed[cmd.Font] {
			continue
		}
		placed[cmd.Font] = true
		for _, p := range prefixes {
			out = append(out, resolve.Command{Prefix: p, Font: cmd.Font})
		}
	}
	for _, f := range charmap.All() {
		prefixes, ok := overrides[f]
		if !ok || placed[f] {
			continue
		}
		for _, p := range prefixes {
			out = append(out, resolve.Command{Prefix: p, Font: f})
		}
	}
	return out
}

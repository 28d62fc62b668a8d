// Package config loads gridscan settings from TOML or YAML files.
//
// Precedence is: command-line flags, then the config file, then Default().
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/badele/gridscan/internal/processor"
)

var ErrInvalidConfig = errors.New("invalid config")

// Supported values
var (
	Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}
	Formats   = []string{"table", "json", "yaml"}
)

// Format of the configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

type Config struct {
	Encoding  string `toml:"encoding" yaml:"encoding"`
	Blank     string `toml:"blank" yaml:"blank"`
	CountMode string `toml:"count_mode" yaml:"count_mode"`
	GearGlyph string `toml:"gear_glyph" yaml:"gear_glyph"`
	Format    string `toml:"format" yaml:"format"`
	Color     *bool  `toml:"color" yaml:"color"`
}

func Default() Config {
	color := true
	return Config{
		Encoding:  "utf8",
		Blank:     ".",
		CountMode: processor.CountPerNumber.String(),
		GearGlyph: "",
		Format:    "table",
		Color:     &color,
	}
}

// Load reads a config file and returns it merged over Default(). The file
// format is taken from the extension; anything but .yaml/.yml is TOML.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	format := DetectFormat(path)
	file, err := Parse(content, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := Default().Merge(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes content without applying defaults.
func Parse(content []byte, format Format) (Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %s", format)
	}

	return cfg, nil
}

// Merge returns c with every non-empty field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Encoding != "" {
		c.Encoding = o.Encoding
	}
	if o.Blank != "" {
		c.Blank = o.Blank
	}
	if o.CountMode != "" {
		c.CountMode = o.CountMode
	}
	if o.GearGlyph != "" {
		c.GearGlyph = o.GearGlyph
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Color != nil {
		c.Color = o.Color
	}
	return c
}

func (c Config) Validate() error {
	var errs []error

	if !slices.Contains(Encodings, c.Encoding) {
		errs = append(errs, fmt.Errorf("%w: unsupported encoding %q", ErrInvalidConfig, c.Encoding))
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format))
	}
	if _, err := processor.ParseCountMode(c.CountMode); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if !isGlyph(c.Blank) {
		errs = append(errs, fmt.Errorf("%w: blank must be a single non-digit character, got %q", ErrInvalidConfig, c.Blank))
	}
	if c.GearGlyph != "" {
		if !isGlyph(c.GearGlyph) {
			errs = append(errs, fmt.Errorf("%w: gear_glyph must be a single non-digit character, got %q", ErrInvalidConfig, c.GearGlyph))
		} else if c.GearGlyph == c.Blank {
			errs = append(errs, fmt.Errorf("%w: gear_glyph %q is the blank glyph", ErrInvalidConfig, c.GearGlyph))
		}
	}

	return errors.Join(errs...)
}

func isGlyph(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && r != utf8.RuneError && (r < '0' || r > '9')
}

// BlankRune returns the blank glyph, falling back to '.'.
func (c Config) BlankRune() rune {
	if !isGlyph(c.Blank) {
		return '.'
	}
	r, _ := utf8.DecodeRuneInString(c.Blank)
	return r
}

// GearRune returns the gear glyph filter, 0 when every symbol qualifies.
func (c Config) GearRune() rune {
	if !isGlyph(c.GearGlyph) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.GearGlyph)
	return r
}

func (c Config) Mode() processor.CountMode {
	mode, _ := processor.ParseCountMode(c.CountMode)
	return mode
}

func (c Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

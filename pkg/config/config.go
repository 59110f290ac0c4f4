// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/textan/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

const defaultWorkers = 4

// ⚙️ Defaults holds the option values used when a command does not set them
type Defaults struct {
	CaseSensitive bool  `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive,omitempty"`
	ReplaceAll    *bool `json:"replace_all,omitempty" yaml:"replace_all,omitempty" toml:"replace_all,omitempty"`
}

// 🔄 Rule is a configured search-and-replace applied by the apply command
type Rule struct {
	Search        string `json:"search" yaml:"search" toml:"search"`
	Replace       string `json:"replace" yaml:"replace" toml:"replace"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty" toml:"case_sensitive,omitempty"`
	First         bool   `json:"first,omitempty" yaml:"first,omitempty" toml:"first,omitempty"`
	Files         string `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Defaults   Defaults `json:"defaults" yaml:"defaults" toml:"defaults"`
	Output     string   `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Workers    int      `json:"workers,omitempty" yaml:"workers,omitempty" toml:"workers,omitempty"`
	WatchTerms []string `json:"watch_terms,omitempty" yaml:"watch_terms,omitempty" toml:"watch_terms,omitempty"`
	Ignore     []string `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	Rules      []Rule   `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`

	location string
}

// 🏭 Default returns a validated configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	// defaults never fail validation
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	cfg, err := Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("config file not found, using defaults")
		return Default(), nil
	}
	return cfg, err
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case "":
		cfg.Output = OutputText
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, cfg.Output)
	}

	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative")
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}

	if cfg.Defaults.ReplaceAll == nil {
		replaceAll := true
		cfg.Defaults.ReplaceAll = &replaceAll
	}

	if len(cfg.WatchTerms) == 0 {
		cfg.WatchTerms = []string{"python"}
	}

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore[%d]: invalid pattern %q", i, pattern)
		}
	}

	for i, r := range cfg.Rules {
		if r.Search == "" {
			return errors.Errorf("rules[%d]: search is required", i)
		}
		if r.Files != "" && !doublestar.ValidatePattern(r.Files) {
			return errors.Errorf("rules[%d]: invalid files pattern %q", i, r.Files)
		}
	}

	return nil
}

// ReplaceAll reports the configured replace-all default
func (cfg *Config) ReplaceAll() bool {
	return cfg.Defaults.ReplaceAll == nil || *cfg.Defaults.ReplaceAll
}

// ReplacementRules converts the configured rules to engine rules
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, text.ReplacementRule{
			SearchTerm:     r.Search,
			Replacement:    r.Replace,
			CaseSensitive:  r.CaseSensitive,
			ReplaceFirst:   r.First,
			FileFilterGlob: r.Files,
		})
	}
	return rules
}

// Location is the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	loc := cfg.location
	if loc == "" {
		loc = "<defaults>"
	}
	return fmt.Sprintf("%s: output=%s workers=%d rules=%d", loc, cfg.Output, cfg.Workers, len(cfg.Rules))
}

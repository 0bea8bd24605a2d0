// Package config resolves ppinet settings from defaults, a TOML file, a .env
// file and PPINET_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/linalg"
	"github.com/katalvlaran/ppinet/stringdb"
)

// ErrInvalid indicates a setting outside its accepted range.
var ErrInvalid = errors.New("config: invalid setting")

// Environment variables read by ApplyEnv.
const (
	EnvStringURL   = "PPINET_STRING_URL"
	EnvSpecies     = "PPINET_SPECIES"
	EnvProteins    = "PPINET_PROTEINS"
	EnvMinScore    = "PPINET_MIN_SCORE"
	EnvVariant     = "PPINET_VARIANT"
	EnvBackend     = "PPINET_BACKEND"
	EnvUnitWeights = "PPINET_UNIT_WEIGHTS"
	EnvAddr        = "PPINET_ADDR"
)

type StringConfig struct {
	BaseURL  string   `toml:"base_url"`
	Species  int      `toml:"species"`
	Caller   string   `toml:"caller"`
	Proteins []string `toml:"proteins"`
	MinScore float64  `toml:"min_score"`
}

type AnalysisConfig struct {
	Variant       string  `toml:"variant"`
	Backend       string  `toml:"backend"`
	UnitWeights   bool    `toml:"unit_weights"`
	MaxIter       int     `toml:"max_iter"`
	Tolerance     float64 `toml:"tolerance"`
	MaxDenseNodes int     `toml:"max_dense_nodes"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type Config struct {
	String   StringConfig   `toml:"string"`
	Analysis AnalysisConfig `toml:"analysis"`
	Server   ServerConfig   `toml:"server"`
}

// Default returns the built-in settings: the five-protein serotonin query
// against the public STRING API, Degree centrality on the native backend.
func Default() *Config {
	return &Config{
		String: StringConfig{
			BaseURL:  stringdb.DefaultBaseURL,
			Species:  stringdb.SpeciesHuman,
			Caller:   "ppinet",
			Proteins: []string{"TPH1", "COMT", "SLC18A2", "HTR1B", "HTR2C"},
		},
		Analysis: AnalysisConfig{
			Variant:       centrality.Degree.String(),
			Backend:       linalg.BackendNative,
			MaxIter:       centrality.DefaultMaxIter,
			Tolerance:     centrality.DefaultTolerance,
			MaxDenseNodes: centrality.DefaultMaxDenseNodes,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides settings from PPINET_* variables found by lookup.
// Pass os.LookupEnv for the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStringURL); ok && v != "" {
		c.String.BaseURL = v
	}
	if v, ok := lookup(EnvSpecies); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSpecies, v, ErrInvalid)
		}
		c.String.Species = n
	}
	if v, ok := lookup(EnvProteins); ok && v != "" {
		c.String.Proteins = SplitList(v)
	}
	if v, ok := lookup(EnvMinScore); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMinScore, v, ErrInvalid)
		}
		c.String.MinScore = f
	}
	if v, ok := lookup(EnvVariant); ok && v != "" {
		c.Analysis.Variant = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Analysis.Backend = v
	}
	if v, ok := lookup(EnvUnitWeights); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvUnitWeights, v, ErrInvalid)
		}
		c.Analysis.UnitWeights = b
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}

	return nil
}

// Resolve builds the effective configuration: defaults, then path (when
// non-empty), then .env, then the process environment. The result is validated.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every setting. The variant must be a canonical selector.
func (c *Config) Validate() error {
	if _, err := centrality.ParseVariant(c.Analysis.Variant); err != nil {
		return fmt.Errorf("analysis.variant: %w", err)
	}
	if _, err := linalg.ByName(c.Analysis.Backend); err != nil {
		return fmt.Errorf("analysis.backend %q: %w", c.Analysis.Backend, ErrInvalid)
	}
	switch {
	case c.Analysis.MaxIter < 1:
		return fmt.Errorf("analysis.max_iter=%d: %w", c.Analysis.MaxIter, ErrInvalid)
	case !(c.Analysis.Tolerance > 0) || math.IsInf(c.Analysis.Tolerance, 1):
		return fmt.Errorf("analysis.tolerance=%g: %w", c.Analysis.Tolerance, ErrInvalid)
	case c.Analysis.MaxDenseNodes < 1:
		return fmt.Errorf("analysis.max_dense_nodes=%d: %w", c.Analysis.MaxDenseNodes, ErrInvalid)
	case c.String.Species < 1:
		return fmt.Errorf("string.species=%d: %w", c.String.Species, ErrInvalid)
	case c.String.BaseURL == "":
		return fmt.Errorf("string.base_url is empty: %w", ErrInvalid)
	}

	return nil
}

// CentralityOptions converts the analysis settings into engine options.
func (c *Config) CentralityOptions() ([]centrality.Option, error) {
	b, err := linalg.ByName(c.Analysis.Backend)
	if err != nil {
		return nil, fmt.Errorf("analysis.backend: %w", ErrInvalid)
	}
	opts := []centrality.Option{
		centrality.WithBackend(b),
		centrality.WithMaxIter(c.Analysis.MaxIter),
		centrality.WithTolerance(c.Analysis.Tolerance),
		centrality.WithMaxDenseNodes(c.Analysis.MaxDenseNodes),
	}
	if c.Analysis.UnitWeights {
		opts = append(opts, centrality.WithUnitWeights())
	}

	return opts, nil
}

// SplitList splits a comma- or whitespace-separated list, dropping empty items.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

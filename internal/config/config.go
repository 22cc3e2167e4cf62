// Package config loads CLI configuration from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-chemsp/dsp/graph"
	"github.com/cwbudde/algo-chemsp/dsp/kernel"
)

const (
	// FileName is the config file base name searched for without extension.
	FileName = "chemsp"
	// EnvPrefix prefixes environment overrides, e.g. CHEMSP_KERNEL_NAME.
	EnvPrefix = "CHEMSP"
)

// Config is the complete CLI configuration.
type Config struct {
	Kernel  KernelConfig  `mapstructure:"kernel" yaml:"kernel"`
	Graph   GraphConfig   `mapstructure:"graph" yaml:"graph"`
	Filter  FilterConfig  `mapstructure:"filter" yaml:"filter"`
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Plot    PlotConfig    `mapstructure:"plot" yaml:"plot"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// KernelConfig selects the similarity kernel.
type KernelConfig struct {
	Name        string  `mapstructure:"name" yaml:"name" validate:"required"`
	LengthScale float64 `mapstructure:"length_scale" yaml:"length_scale" validate:"gte=0"`
	Gamma       float64 `mapstructure:"gamma" yaml:"gamma" validate:"gte=0"`
	Coef0       float64 `mapstructure:"coef0" yaml:"coef0"`
	Degree      int     `mapstructure:"degree" yaml:"degree" validate:"gte=0"`
}

// Params converts the config into kernel registry parameters.
func (k KernelConfig) Params() kernel.Params {
	return kernel.Params{
		LengthScale: k.LengthScale,
		Gamma:       k.Gamma,
		Coef0:       k.Coef0,
		Degree:      k.Degree,
	}
}

// GraphConfig controls adjacency construction and the shift operator.
type GraphConfig struct {
	Operator  string  `mapstructure:"operator" yaml:"operator" validate:"required"`
	SelfLoops bool    `mapstructure:"self_loops" yaml:"self_loops"`
	Threshold float64 `mapstructure:"threshold" yaml:"threshold" validate:"gte=0"`
	KNN       int     `mapstructure:"knn" yaml:"knn" validate:"gte=0"`
	Workers   int     `mapstructure:"workers" yaml:"workers" validate:"gte=0"`
}

// Options converts the config into adjacency options.
func (g GraphConfig) Options() []graph.Option {
	opts := []graph.Option{
		graph.WithWorkers(g.Workers),
		graph.WithThreshold(g.Threshold),
		graph.WithKNN(g.KNN),
	}
	if !g.SelfLoops {
		opts = append(opts, graph.WithoutSelfLoops())
	}
	return opts
}

// FilterConfig selects the spectral filter used by the filter command.
type FilterConfig struct {
	Response  string  `mapstructure:"response" yaml:"response" validate:"oneof=heat tikhonov lowpass"`
	Parameter float64 `mapstructure:"parameter" yaml:"parameter" validate:"gte=0"`
}

// DatasetConfig names dataset columns.
type DatasetConfig struct {
	SignalColumn string `mapstructure:"signal_column" yaml:"signal_column" validate:"required"`
	IDColumn     string `mapstructure:"id_column" yaml:"id_column"`
}

// CacheConfig controls the on-disk basis cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Dir     string `mapstructure:"dir" yaml:"dir" validate:"required_if=Enabled true"`
}

// PlotConfig controls rendered figures.
type PlotConfig struct {
	Dir    string  `mapstructure:"dir" yaml:"dir" validate:"required"`
	Width  float64 `mapstructure:"width" yaml:"width" validate:"gt=0"`
	Height float64 `mapstructure:"height" yaml:"height" validate:"gt=0"`
	Seed   uint64  `mapstructure:"seed" yaml:"seed"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json yaml csv"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cacheDir := ""
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "chemsp", "bases")
	}
	return &Config{
		Kernel:  KernelConfig{Name: "rbf", LengthScale: 1},
		Graph:   GraphConfig{Operator: graph.OperatorAdjacency.String(), SelfLoops: true},
		Filter:  FilterConfig{Response: "heat", Parameter: 1},
		Dataset: DatasetConfig{SignalColumn: "signal", IDColumn: "id"},
		Cache:   CacheConfig{Enabled: false, Dir: cacheDir},
		Plot:    PlotConfig{Dir: "Images", Width: 8, Height: 6, Seed: 1},
		Output:  OutputConfig{Format: "json"},
	}
}

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// ConfigFilePath, when set, is the only file consulted and must exist.
	ConfigFilePath string
	// SearchDirs are searched in order for chemsp.{yaml,yml,toml,json}.
	SearchDirs []string
}

// DefaultSearchDirs returns the working directory and the user config directory.
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "chemsp"))
	}
	return dirs
}

var validate = validator.New()

// Load resolves configuration: defaults, then the config file, then
// CHEMSP_* environment variables. It returns the config and the file used
// ("" when none was found).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
	} else {
		v.SetConfigName(FileName)
		for _, dir := range opts.SearchDirs {
			v.AddConfigPath(dir)
		}
	}

	resolved := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFilePath != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	} else {
		resolved = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

// Validate checks struct constraints plus kernel and operator names.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := kernel.Lookup(cfg.Kernel.Name, cfg.Kernel.Params()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := graph.ParseOperator(cfg.Graph.Operator); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("kernel.name", d.Kernel.Name)
	v.SetDefault("kernel.length_scale", d.Kernel.LengthScale)
	v.SetDefault("kernel.gamma", d.Kernel.Gamma)
	v.SetDefault("kernel.coef0", d.Kernel.Coef0)
	v.SetDefault("kernel.degree", d.Kernel.Degree)
	v.SetDefault("graph.operator", d.Graph.Operator)
	v.SetDefault("graph.self_loops", d.Graph.SelfLoops)
	v.SetDefault("graph.threshold", d.Graph.Threshold)
	v.SetDefault("graph.knn", d.Graph.KNN)
	v.SetDefault("graph.workers", d.Graph.Workers)
	v.SetDefault("filter.response", d.Filter.Response)
	v.SetDefault("filter.parameter", d.Filter.Parameter)
	v.SetDefault("dataset.signal_column", d.Dataset.SignalColumn)
	v.SetDefault("dataset.id_column", d.Dataset.IDColumn)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("plot.dir", d.Plot.Dir)
	v.SetDefault("plot.width", d.Plot.Width)
	v.SetDefault("plot.height", d.Plot.Height)
	v.SetDefault("plot.seed", d.Plot.Seed)
	v.SetDefault("output.format", d.Output.Format)
}

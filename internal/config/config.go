// Package config provides Viper-based configuration loading for the perk
// report generator.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Export format names accepted in ReportConfig.Exports.
const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// ReportConfig holds input discovery and output settings.
type ReportConfig struct {
	// Root is the directory tree scanned for perk data files.
	Root string `mapstructure:"root"`
	// Output is the Markdown report path; an existing file is overwritten.
	Output string `mapstructure:"output"`
	// Extension is the file name suffix of perk data files.
	Extension string `mapstructure:"extension"`
	// Exports lists additional machine-readable exports: "json", "yaml".
	Exports []string `mapstructure:"exports"`
	// ExportDir is where exports are written; empty means the Output directory.
	ExportDir string `mapstructure:"export_dir"`
	// Dedupe drops later perks whose name was already reported.
	Dedupe bool `mapstructure:"dedupe"`
}

// ExportPath returns the path of an export file named name.
//
// Postcondition: the result lies in ExportDir, or beside Output when
// ExportDir is empty.
func (r ReportConfig) ExportPath(name string) string {
	dir := r.ExportDir
	if dir == "" {
		dir = filepath.Dir(r.Output)
	}
	return filepath.Join(dir, name)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateReport(r ReportConfig) error {
	var errs []string
	if r.Root == "" {
		errs = append(errs, "report.root must not be empty")
	}
	if r.Output == "" {
		errs = append(errs, "report.output must not be empty")
	}
	if !strings.HasPrefix(r.Extension, ".") || len(r.Extension) < 2 {
		errs = append(errs, fmt.Sprintf("report.extension must start with '.' and name a suffix, got %q", r.Extension))
	}
	validExports := map[string]bool{ExportJSON: true, ExportYAML: true}
	for _, e := range r.Exports {
		if !validExports[e] {
			errs = append(errs, fmt.Sprintf("report.exports entries must be one of [json, yaml], got %q", e))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load builds the configuration from defaults, the optional YAML file at path,
// and PERKS_-prefixed environment variables, then validates it.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides behaves like Load, then sets each overrides key (for
// example "report.root") above every other source before validating.
// Empty override values are ignored.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadWithOverrides(path string, overrides map[string]string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with PERKS_ prefix
	v.SetEnvPrefix("PERKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.root", "Mist/Content/Mist/Data/Perks")
	v.SetDefault("report.output", "Perks_Information.md")
	v.SetDefault("report.extension", ".json")
	v.SetDefault("report.exports", []string{})
	v.SetDefault("report.export_dir", "")
	v.SetDefault("report.dedupe", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

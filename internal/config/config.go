// =============================================================================
// CFDI Report - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration. Without a configuration
// file the report runs with the built-in defaults, which reproduce the
// standard CFDI 3.x report exactly.
//
// EXAMPLE (config.yaml):
//
//   namespace: http://www.sat.gob.mx/cfd/4
//   report_width: 80
//   continue_on_error: false
//   log_level: warn
//   fields:
//     - name: fecha
//       path: [Fecha]
//     - name: emisor
//       path: [Emisor, Nombre]
//
// Fields may instead come from an XLSX template (template_file). When both
// are set the template wins.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/cfdi-report/internal/extractor"
	"github.com/ginjaninja78/cfdi-report/internal/fieldset"
	"github.com/ginjaninja78/cfdi-report/internal/report"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the report configuration.
type Config struct {
	// Namespace qualifies every child element lookup.
	// Default: "http://www.sat.gob.mx/cfd/3"
	Namespace string `yaml:"namespace"`

	// ReportWidth is the total line width of the report.
	// Default: 80
	ReportWidth int `yaml:"report_width"`

	// ItemBullet prefixes every field value.
	// Default: "*"
	ItemBullet string `yaml:"item_bullet"`

	// ProgressBullet prefixes the "Procesando <file>" lines.
	// Default: "=>"
	ProgressBullet string `yaml:"progress_bullet"`

	// ErrorBullet prefixes failures listed after the summary when
	// ContinueOnError is set.
	// Default: "!"
	ErrorBullet string `yaml:"error_bullet"`

	// ContinueOnError skips failed invoices instead of aborting the run.
	// Default: false
	ContinueOnError bool `yaml:"continue_on_error"`

	// LogLevel controls diagnostic output on stderr.
	// Valid values: "debug", "info", "warn", "error", "disabled"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// TemplateFile is an optional XLSX descriptor template. Relative paths
	// are resolved against the directory of the configuration file.
	TemplateFile string `yaml:"template_file"`

	// Fields is the ordered descriptor set.
	// Default: fieldset.Default()
	Fields []fieldset.Descriptor `yaml:"fields"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration at configPath. An empty path returns the
// defaults.
//
// RETURNS:
//   - The configuration with defaults applied and descriptors loaded.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TemplateFile != "" && !filepath.IsAbs(cfg.TemplateFile) {
		cfg.TemplateFile = filepath.Join(filepath.Dir(configPath), cfg.TemplateFile)
	}

	applyDefaults(&cfg)

	if err := cfg.LoadTemplate(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadTemplate replaces Fields with the descriptors of TemplateFile, if set.
func (c *Config) LoadTemplate() error {
	if c.TemplateFile == "" {
		return nil
	}

	descriptors, err := fieldset.LoadTemplate(c.TemplateFile)
	if err != nil {
		return fmt.Errorf("failed to load field template: %w", err)
	}
	c.Fields = descriptors

	return nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Namespace == "" {
		cfg.Namespace = extractor.NamespaceCFDI3
	}
	if cfg.ReportWidth == 0 {
		cfg.ReportWidth = report.DefaultWidth
	}
	if cfg.ItemBullet == "" {
		cfg.ItemBullet = report.DefaultBullet
	}
	if cfg.ProgressBullet == "" {
		cfg.ProgressBullet = "=>"
	}
	if cfg.ErrorBullet == "" {
		cfg.ErrorBullet = "!"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if len(cfg.Fields) == 0 && cfg.TemplateFile == "" {
		cfg.Fields = fieldset.Default()
	}
}

// Validate checks the configuration for values the report cannot run with.
func (c *Config) Validate() error {
	for _, bullet := range []string{c.ItemBullet, c.ProgressBullet, c.ErrorBullet} {
		if c.ReportWidth-len([]rune(bullet))-1 < 1 {
			return fmt.Errorf("report_width %d is too narrow for bullet %q", c.ReportWidth, bullet)
		}
	}

	if err := fieldset.Validate(c.Fields); err != nil {
		return err
	}

	return fieldset.RequireTotals(c.Fields)
}

// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultSchema      = "api/medialive.yaml"
	DefaultOutputDir   = "medialive"
	DefaultPackage     = "medialive"
	DefaultOpenAPIPath = "api/openapi.yaml"
	DefaultWorkers     = 4
	DefaultDebounce    = 300 * time.Millisecond
	DefaultLogLevel    = "info"
)

// Environment variables read by Loader.Load.
const (
	EnvSchema    = "MEDIALIVEGEN_SCHEMA"
	EnvOutputDir = "MEDIALIVEGEN_OUTPUT_DIR"
	EnvPackage   = "MEDIALIVEGEN_PACKAGE"
	EnvOpenAPI   = "MEDIALIVEGEN_OPENAPI"
	EnvWorkers   = "MEDIALIVEGEN_WORKERS"
	EnvDebounce  = "MEDIALIVEGEN_DEBOUNCE"
	EnvLogLevel  = "MEDIALIVEGEN_LOG_LEVEL"
)

// Config is the effective generator configuration.
type Config struct {
	Schema      string
	OutputDir   string
	Package     string
	OpenAPIPath string
	Workers     int
	Debounce    time.Duration
	LogLevel    string
}

// FileConfig mirrors medialivegen.yaml. Empty values leave the default in
// place.
type FileConfig struct {
	Schema    string `yaml:"schema,omitempty"`
	OutputDir string `yaml:"outputDir,omitempty"`
	Package   string `yaml:"package,omitempty"`
	OpenAPI   string `yaml:"openapi,omitempty"`
	Workers   int    `yaml:"workers,omitempty"`
	Debounce  string `yaml:"debounce,omitempty"`
	LogLevel  string `yaml:"logLevel,omitempty"`
}

// Loader handles configuration loading with precedence.
type Loader struct {
	configPath string
	// ConsumedEnvKeys records every environment key the last Load read.
	ConsumedEnvKeys map[string]struct{}
}

// NewLoader creates a loader. configPath may be empty.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath:      configPath,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Path returns the config file path, or "".
func (l *Loader) Path() string {
	return l.configPath
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

func (l *Loader) envDuration(key string, defaultVal time.Duration) time.Duration {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseDuration(key, defaultVal)
}

// Load applies defaults, the config file and the environment, in that
// order, then validates the result.
func (l *Loader) Load() (Config, error) {
	cfg := Config{}
	setDefaults(&cfg)

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := l.mergeFileConfig(&cfg, fileCfg); err != nil {
			return cfg, fmt.Errorf("merge file config: %w", err)
		}
	}

	l.mergeEnvConfig(&cfg)

	for _, p := range []*string{&cfg.Schema, &cfg.OutputDir, &cfg.OpenAPIPath} {
		if abs, err := filepath.Abs(*p); err == nil {
			*p = abs
		}
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Schema = DefaultSchema
	cfg.OutputDir = DefaultOutputDir
	cfg.Package = DefaultPackage
	cfg.OpenAPIPath = DefaultOpenAPIPath
	cfg.Workers = DefaultWorkers
	cfg.Debounce = DefaultDebounce
	cfg.LogLevel = DefaultLogLevel
}

// loadFile parses a YAML config file. Unknown keys are rejected.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("config file contains multiple documents or trailing content")
	}
	return &fileCfg, nil
}

func (l *Loader) mergeFileConfig(dst *Config, src *FileConfig) error {
	base := filepath.Dir(l.configPath)
	rel := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	if src.Schema != "" {
		dst.Schema = rel(src.Schema)
	}
	if src.OutputDir != "" {
		dst.OutputDir = rel(src.OutputDir)
	}
	if src.OpenAPI != "" {
		dst.OpenAPIPath = rel(src.OpenAPI)
	}
	if src.Package != "" {
		dst.Package = src.Package
	}
	if src.Workers != 0 {
		dst.Workers = src.Workers
	}
	if src.Debounce != "" {
		d, err := time.ParseDuration(src.Debounce)
		if err != nil {
			return fmt.Errorf("debounce: %w", err)
		}
		dst.Debounce = d
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	return nil
}

func (l *Loader) mergeEnvConfig(cfg *Config) {
	cfg.Schema = l.envString(EnvSchema, cfg.Schema)
	cfg.OutputDir = l.envString(EnvOutputDir, cfg.OutputDir)
	cfg.Package = l.envString(EnvPackage, cfg.Package)
	cfg.OpenAPIPath = l.envString(EnvOpenAPI, cfg.OpenAPIPath)
	cfg.Workers = l.envInt(EnvWorkers, cfg.Workers)
	cfg.Debounce = l.envDuration(EnvDebounce, cfg.Debounce)
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
}

// String renders the configuration for logs.
func (c Config) String() string {
	return fmt.Sprintf("schema=%s out=%s package=%s openapi=%s workers=%d debounce=%s log=%s",
		c.Schema, c.OutputDir, c.Package, c.OpenAPIPath, c.Workers, c.Debounce, c.LogLevel)
}

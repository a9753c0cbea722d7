// Package config provides configuration management for batch evaluation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for batch evaluation
type Config struct {
	// Batch Processing Configuration
	BatchSize         int `json:"batch_size" yaml:"batch_size"`                 // Rows per batch handed to a kernel call
	ParallelThreshold int `json:"parallel_threshold" yaml:"parallel_threshold"` // Minimum rows to trigger parallel evaluation
	WorkerPoolSize    int `json:"worker_pool_size" yaml:"worker_pool_size"`     // Number of worker goroutines (0 = auto-detect)

	// Kernel Configuration
	EnableFastPaths bool `json:"enable_fast_paths" yaml:"enable_fast_paths"` // Honor the flat-no-nulls fast path hint

	// Debugging Configuration
	MetricsCollection bool `json:"metrics_collection" yaml:"metrics_collection"` // Enable metrics collection
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultBatchSize         = 1024
	DefaultParallelThreshold = 10000
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		BatchSize:         DefaultBatchSize,
		ParallelThreshold: DefaultParallelThreshold,
		WorkerPoolSize:    0, // Auto-detect
		EnableFastPaths:   true,
		MetricsCollection: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("BatchSize must be positive, got %d", c.BatchSize)
	}

	if c.ParallelThreshold <= 0 {
		return fmt.Errorf("ParallelThreshold must be positive, got %d", c.ParallelThreshold)
	}

	if c.WorkerPoolSize < 0 {
		return fmt.Errorf("WorkerPoolSize must be non-negative, got %d", c.WorkerPoolSize)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.BatchSize == 0 {
		c.BatchSize = defaults.BatchSize
	}
	if c.ParallelThreshold == 0 {
		c.ParallelThreshold = defaults.ParallelThreshold
	}
	if c.WorkerPoolSize == 0 {
		c.WorkerPoolSize = defaults.WorkerPoolSize
	}

	// Boolean fields are intentionally not defaulted here so an explicitly
	// set false stays distinguishable from unset. Use NewConfig() directly
	// if you need boolean defaults.

	return c
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a file (supports JSON and YAML)
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() Config {
	config := NewConfig()

	if val := os.Getenv("OKAPI_BATCH_SIZE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.BatchSize = parsed
		}
	}

	if val := os.Getenv("OKAPI_PARALLEL_THRESHOLD"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.ParallelThreshold = parsed
		}
	}

	if val := os.Getenv("OKAPI_WORKER_POOL_SIZE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.WorkerPoolSize = parsed
		}
	}

	if val := os.Getenv("OKAPI_ENABLE_FAST_PATHS"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.EnableFastPaths = parsed
		}
	}

	if val := os.Getenv("OKAPI_METRICS_COLLECTION"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.MetricsCollection = parsed
		}
	}

	return config
}

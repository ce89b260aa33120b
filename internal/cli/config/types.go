// Package config provides configuration management for the digitadd CLI.
//
// Values are layered with koanf: built-in defaults, then a YAML config file,
// then DIGITADD_* environment variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat    string `koanf:"output"`
	Verbose         bool   `koanf:"verbose"`
	LogLevel        string `koanf:"log_level"`
	Workers         int    `koanf:"workers"`
	NormalizeInputs bool   `koanf:"normalize_inputs"`
	Trace           bool   `koanf:"trace"`
}

// Default configuration values.
const (
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel = "warn"
	DefaultWorkers  = 0 // GOMAXPROCS

	EnvPrefix = "DIGITADD_"
)

// configFileNames are searched, in order, in the working directory.
var configFileNames = []string{"digitadd.yaml", "digitadd.yml", ".digitadd.yaml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		Workers:      DefaultWorkers,
	}
}

package config

import (
	"os"
	"strconv"
)

// Input source names accepted by LIFT_INPUT_SOURCE.
const (
	SourceConstant = "constant"
	SourceUniform  = "uniform"
)

// Config holds all application configuration.
type Config struct {
	Scenario ScenarioConfig
	Sampling SamplingConfig
	Server   ServerConfig
	Log      LogConfig
}

// ScenarioConfig selects which named input configuration to evaluate.
type ScenarioConfig struct {
	Name string
	File string
}

// SamplingConfig controls where input quantities come from.
type SamplingConfig struct {
	Source     string
	Samples    int
	MaxSamples int
	Seed       uint64
}

// ServerConfig holds settings for the long-running MCP server.
type ServerConfig struct {
	MetricsAddr string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		Scenario: ScenarioConfig{
			Name: getEnvString("LIFT_SCENARIO", "pitot"),
			File: getEnvString("LIFT_SCENARIO_FILE", ""),
		},
		Sampling: SamplingConfig{
			Source:     getEnvChoice("LIFT_INPUT_SOURCE", SourceConstant, SourceConstant, SourceUniform),
			Samples:    getEnvPositiveInt("LIFT_SAMPLES", 1000),
			MaxSamples: getEnvPositiveInt("LIFT_MAX_SAMPLES", 100000),
			Seed:       getEnvUint64("LIFT_SEED", 1),
		},
		Server: ServerConfig{
			MetricsAddr: getEnvString("METRICS_ADDR", ""),
		},
		Log: LogConfig{
			Debug: getEnvBool("LOG_DEBUG", false),
		},
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvChoice(key, defaultVal string, choices ...string) string {
	v := os.Getenv(key)
	for _, c := range choices {
		if v == c {
			return v
		}
	}
	return defaultVal
}

func getEnvPositiveInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getEnvUint64(key string, defaultVal uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

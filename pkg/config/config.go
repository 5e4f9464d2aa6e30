package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Simulation SimulationConfig
	Report     ReportConfig
	Logging    LoggingConfig
}

type SimulationConfig struct {
	// Plan selects the treatment plan to simulate: 1 or 2, or 0 to run
	// both plans back to back.
	Plan int
}

type ReportConfig struct {
	Color bool
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	config := &Config{
		Simulation: SimulationConfig{
			Plan: getEnvAsInt("SIM_PLAN", 0),
		},
		Report: ReportConfig{
			Color: getEnvAsBool("REPORT_COLOR", true),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

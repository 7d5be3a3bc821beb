package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	LogLevel string

	Paths  PathsConfig
	Output OutputConfig
	HTTP   HTTPConfig
}

// PathsConfig holds the fixed files the command line tools work on.
type PathsConfig struct {
	Background     string
	Logo           string
	Output         string
	RemoveBGInput  string
	RemoveBGOutput string
}

type OutputConfig struct {
	JPEGQuality int
}

type HTTPConfig struct {
	Port            string
	DownloadTimeout time.Duration
	MaxUploadMB     int // request body and download cap
}

func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Paths: PathsConfig{
			Background:     getEnv("LOGOSTAMP_BACKGROUND", "background.jpg"),
			Logo:           getEnv("LOGOSTAMP_LOGO", "logo.png"),
			Output:         getEnv("LOGOSTAMP_OUTPUT", "output.jpg"),
			RemoveBGInput:  getEnv("LOGOSTAMP_REMOVEBG_INPUT", "logo_source.png"),
			RemoveBGOutput: getEnv("LOGOSTAMP_REMOVEBG_OUTPUT", "logo_transparent.png"),
		},

		Output: OutputConfig{
			JPEGQuality: getEnvInt("JPEG_QUALITY", 95),
		},

		HTTP: HTTPConfig{
			Port:            getEnv("PORT", "8080"),
			DownloadTimeout: time.Duration(getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 20),
		},
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}

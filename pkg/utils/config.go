package utils

import (
	"os"
	"strconv"
)

const (
	// SourceDriverJSON reads episode records from a JSON file.
	SourceDriverJSON = "json"
	// SourceDriverSQLite reads episode records from a sqlite episodes table.
	SourceDriverSQLite = "sqlite"
)

type ServerConfig struct {
	Addr         string
	SourceDriver string
	SourcePath   string
	LogLevel     string
	LogJSON      bool
	ProxyRPS     float64
	ProxyBurst   int
}

func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		Addr:         getEnv("STREAMHUB_ADDR", ":8080"),
		SourceDriver: getEnv("STREAMHUB_SOURCE_DRIVER", SourceDriverJSON),
		SourcePath:   getEnv("STREAMHUB_SOURCE", "data/episodes.json"),
		LogLevel:     getEnv("STREAMHUB_LOG_LEVEL", "info"),
		LogJSON:      getEnvBool("STREAMHUB_LOG_JSON", false),
		ProxyRPS:     getEnvFloat("STREAMHUB_PROXY_RPS", 10),
		ProxyBurst:   getEnvInt("STREAMHUB_PROXY_BURST", 20),
	}

	if cfg.SourceDriver != SourceDriverJSON && cfg.SourceDriver != SourceDriverSQLite {
		cfg.SourceDriver = SourceDriverJSON
	}
	if cfg.ProxyRPS <= 0 {
		cfg.ProxyRPS = 10
	}
	if cfg.ProxyBurst <= 0 {
		cfg.ProxyBurst = 20
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

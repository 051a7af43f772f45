package config

import "os"

type Config struct {
	ServerPort  string
	MetricsAddr string
	PprofAddr   string

	GeminiAPIKey string
	GeminiModel  string
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnvOrDefault("SERVER_PORT", "8091"),
		MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
		PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

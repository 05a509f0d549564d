package config

import "os"

type Config struct {
	Port            string
	DBPath          string
	ImagePath       string
	GenAIBackend    string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	LogLevel        string
	LogFile         string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "5000"),
		DBPath:          getEnv("DB_PATH", "/data/krishimitra.db"),
		ImagePath:       getEnv("IMAGE_PATH", "/data/uploads"),
		GenAIBackend:    getEnv("GENAI_BACKEND", "gemini"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

// APIKey returns the credential for the configured backend. An empty result
// means no credential is set and the server runs in demo mode.
func (c *Config) APIKey() string {
	if c.GenAIBackend == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

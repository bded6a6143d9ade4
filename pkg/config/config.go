package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// OpenAI-compatible API
	OpenAIAPIKey  string
	OpenAIBaseURL string
	EmbedModel    string
	ChatModel     string

	// Uploads
	UploadDir   string
	MaxFileSize int // bytes

	// Retrieval
	TopK int

	// Frontend
	FrontendURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "3000"),
		AppName: envOrDefault("APP_NAME", "Doc RAG"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		EmbedModel:    envOrDefault("EMBED_MODEL", "text-embedding-3-small"),
		ChatModel:     envOrDefault("CHAT_MODEL", "gpt-3.5-turbo"),

		UploadDir:   envOrDefault("UPLOAD_DIR", "uploads"),
		MaxFileSize: envOrDefaultInt("MAX_FILE_SIZE", 10*1024*1024),

		TopK: envOrDefaultInt("SEARCH_TOP_K", 5),

		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

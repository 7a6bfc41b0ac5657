package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	Environment        string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
}

// Load reads the process environment (plus an optional .env file) and fails
// when a Supabase credential is missing, so a misconfigured process never
// starts serving. The service role key must never leave this process.
func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
	}

	if config.SupabaseURL == "" {
		return nil, fmt.Errorf("missing required environment variable SUPABASE_URL")
	}
	if config.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("missing required environment variable SUPABASE_ANON_KEY")
	}
	if config.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("missing required environment variable SUPABASE_SERVICE_ROLE_KEY")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

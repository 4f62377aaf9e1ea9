package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/taxe/internal/pkg/models"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	// DefaultAPIBaseURL is the API root as seen from an emulator on the dev host
	DefaultAPIBaseURL = "http://10.0.2.2:3000/api/v1/"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "taxe")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// API config
	configs.API.BaseURL = GetEnv("TAXE_API_BASE_URL", DefaultAPIBaseURL)
	configs.API.Timeout = GetEnvAsDuration("TAXE_API_TIMEOUT", 10*time.Second)

	// Session config
	configs.Session.Backend = GetEnv("SESSION_BACKEND", SessionBackendMemory)
	configs.Session.Namespace = GetEnv("SESSION_NAMESPACE", "default")
	configs.Session.TTL = GetEnvAsDuration("SESSION_TTL", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate rejects settings the client cannot start with
func Validate(configs *models.Config) error {
	if configs.API.BaseURL == "" {
		return fmt.Errorf("TAXE_API_BASE_URL must not be empty")
	}
	if configs.API.Timeout <= 0 {
		return fmt.Errorf("TAXE_API_TIMEOUT must be positive, got %s", configs.API.Timeout)
	}
	switch configs.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", configs.Session.Backend)
	}
	if configs.Session.TTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative, got %s", configs.Session.TTL)
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go durations ("30s") or a bare number of seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

package models

import "time"

// Config represents application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig contains the taxe REST API settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig selects where session state lives
type SessionConfig struct {
	Backend   string // "memory" or "redis"
	Namespace string // device or installation id used to scope redis keys
	TTL       time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

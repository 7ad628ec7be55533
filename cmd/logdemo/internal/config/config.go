package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Strategy    string
	File        FileConfig
	Database    DatabaseConfig
	Redis       RedisConfig
}

// FileConfig 檔案輸出路徑
type FileConfig struct {
	Path     string // 純文字日誌
	JSONPath string // JSON 陣列日誌
}

type DatabaseConfig struct {
	URL   string // postgres 連線字串，空字串表示不使用
	Table string
}

type RedisConfig struct {
	Addr      string // 空字串表示不使用
	Password  string
	DB        int
	PoolSize  int
	KeyPrefix string
	MaxLength int
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	redisDB, err := getEnvIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	poolSize, err := getEnvIntOrDefault("REDIS_POOL_SIZE", 10)
	if err != nil {
		return nil, err
	}
	maxLength, err := getEnvIntOrDefault("LOG_REDIS_MAX_LENGTH", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "debug"),
		Strategy:    getEnvOrDefault("LOG_STRATEGY", "console"),
		File: FileConfig{
			Path:     getEnvOrDefault("LOG_FILE_PATH", "app.log"),
			JSONPath: getEnvOrDefault("LOG_JSON_PATH", "logs.json"),
		},
		Database: DatabaseConfig{
			URL:   getEnvOrDefault("DATABASE_URL", ""),
			Table: getEnvOrDefault("LOG_TABLE", "logs"),
		},
		Redis: RedisConfig{
			Addr:      getEnvOrDefault("REDIS_ADDR", ""),
			Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:        redisDB,
			PoolSize:  poolSize,
			KeyPrefix: getEnvOrDefault("LOG_REDIS_KEY_PREFIX", ""),
			MaxLength: maxLength,
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %w", key, err)
	}
	return intValue, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"12"`

	// Weather API Config (OpenWeather)
	WeatherAPIKey   string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL  string        `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	WeatherTimeout  time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	WeatherCacheTTL time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`

	// Photo Storage Config
	StorageDir       string `env:"STORAGE_DIR" envDefault:"./uploads"`
	StoragePublicURL string `env:"STORAGE_PUBLIC_URL" envDefault:"http://localhost:8080/uploads"`

	// Kafka Config (пустой список брокеров отключает публикацию событий)
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"snowshield-events"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 12),
		WeatherAPIKey:     os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL:    getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherTimeout:    getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		WeatherCacheTTL:   getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		StorageDir:        getEnv("STORAGE_DIR", "./uploads"),
		StoragePublicURL:  getEnv("STORAGE_PUBLIC_URL", "http://localhost:8080/uploads"),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "snowshield-events"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка списка брокеров Kafka
	brokersStr := os.Getenv("KAFKA_BROKERS")
	if brokersStr != "" {
		cfg.KafkaBrokers = strings.Split(brokersStr, ",")
		for i, b := range cfg.KafkaBrokers {
			cfg.KafkaBrokers[i] = strings.TrimSpace(b)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

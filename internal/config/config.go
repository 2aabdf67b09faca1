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
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Detection (YOLO) Config
	DetectionBaseURL      string        `env:"YOLO_API_URL"`
	DetectionAPIKey       string        `env:"YOLO_API_KEY"`
	DetectionClientID     string        `env:"YOLO_API_CLIENT"`
	DetectionTimeout      time.Duration `env:"YOLO_TIMEOUT" envDefault:"15s"`
	DetectionRateLimit    float64       `env:"YOLO_RATE_LIMIT" envDefault:"5"`
	DetectionRateBurst    int           `env:"YOLO_RATE_BURST" envDefault:"5"`
	DetectionSettleDelay  time.Duration `env:"YOLO_SETTLE_DELAY" envDefault:"2s"`
	DetectionPollInterval time.Duration `env:"YOLO_POLL_INTERVAL" envDefault:"1s"`
	DetectionPollMaxDelay time.Duration `env:"YOLO_POLL_MAX_INTERVAL" envDefault:"5s"`
	DetectionPollAttempts int           `env:"YOLO_POLL_MAX_ATTEMPTS" envDefault:"6"`
	DetectionPollTimeout  time.Duration `env:"YOLO_POLL_TIMEOUT" envDefault:"30s"`

	// Storage Config
	SupabaseURL      string `env:"SUPABASE_URL"`
	StorageBaseURL   string `env:"STORAGE_BASE_URL"`
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StorageRegion    string `env:"STORAGE_REGION"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"true"`
	StorageBucket    string `env:"STORAGE_BUCKET" envDefault:"yolo_model"`

	// Auth Config
	JWTSecret string `env:"JWT_SECRET"`

	// Heatmap Config
	HeatmapGridSize    float64 `env:"HEATMAP_GRID_SIZE" envDefault:"0.0045"`
	HeatmapPointRadius int     `env:"HEATMAP_POINT_RADIUS" envDefault:"500"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		CacheTTL:              getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DetectionBaseURL:      strings.TrimSuffix(os.Getenv("YOLO_API_URL"), "/"),
		DetectionAPIKey:       os.Getenv("YOLO_API_KEY"),
		DetectionClientID:     os.Getenv("YOLO_API_CLIENT"),
		DetectionTimeout:      getEnvAsDuration("YOLO_TIMEOUT", 15*time.Second),
		DetectionRateLimit:    getEnvAsFloat("YOLO_RATE_LIMIT", 5),
		DetectionRateBurst:    getEnvAsInt("YOLO_RATE_BURST", 5),
		DetectionSettleDelay:  getEnvAsDuration("YOLO_SETTLE_DELAY", 2*time.Second),
		DetectionPollInterval: getEnvAsDuration("YOLO_POLL_INTERVAL", time.Second),
		DetectionPollMaxDelay: getEnvAsDuration("YOLO_POLL_MAX_INTERVAL", 5*time.Second),
		DetectionPollAttempts: getEnvAsInt("YOLO_POLL_MAX_ATTEMPTS", 6),
		DetectionPollTimeout:  getEnvAsDuration("YOLO_POLL_TIMEOUT", 30*time.Second),
		SupabaseURL:           strings.TrimSuffix(os.Getenv("SUPABASE_URL"), "/"),
		StorageBaseURL:        strings.TrimSuffix(os.Getenv("STORAGE_BASE_URL"), "/"),
		StorageEndpoint:       os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey:      os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:      os.Getenv("STORAGE_SECRET_KEY"),
		StorageRegion:         os.Getenv("STORAGE_REGION"),
		StorageUseSSL:         getEnvAsBool("STORAGE_USE_SSL", true),
		StorageBucket:         getEnv("STORAGE_BUCKET", "yolo_model"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		HeatmapGridSize:       getEnvAsFloat("HEATMAP_GRID_SIZE", 0.0045),
		HeatmapPointRadius:    getEnvAsInt("HEATMAP_POINT_RADIUS", 500),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет обязательные параметры
func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", c.DatabaseURL},
		{"YOLO_API_URL", c.DetectionBaseURL},
		{"YOLO_API_KEY", c.DetectionAPIKey},
		{"YOLO_API_CLIENT", c.DetectionClientID},
		{"SUPABASE_URL", c.SupabaseURL},
		{"STORAGE_ENDPOINT", c.StorageEndpoint},
		{"STORAGE_ACCESS_KEY", c.StorageAccessKey},
		{"STORAGE_SECRET_KEY", c.StorageSecretKey},
		{"JWT_SECRET", c.JWTSecret},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.HeatmapGridSize <= 0 {
		return fmt.Errorf("HEATMAP_GRID_SIZE must be positive, got %v", c.HeatmapGridSize)
	}
	if c.DetectionPollAttempts < 1 {
		return fmt.Errorf("YOLO_POLL_MAX_ATTEMPTS must be at least 1, got %d", c.DetectionPollAttempts)
	}
	return nil
}

// PublicStorageURL возвращает базовый публичный URL хранилища:
// STORAGE_BASE_URL, если задан, иначе URL публичных объектов Supabase Storage
func (c *Config) PublicStorageURL() string {
	if c.StorageBaseURL != "" {
		return c.StorageBaseURL
	}
	return c.SupabaseURL + "/storage/v1/object/public"
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

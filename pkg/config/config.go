// Файл: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// BackendConfig - внешний REST API шиномонтажа.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	CatalogueTTL  time.Duration
	StatisticsTTL time.Duration
	DraftTTL      time.Duration
}

// OrdersConfig - значения по умолчанию для заказов за наличный/карточный расчет.
type OrdersConfig struct {
	WalkInClientID   int64
	RetailContractID int64
}

type LogConfig struct {
	Level string
	Path  string
}

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Orders  OrdersConfig
	Log     LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:5000"),
			Timeout: getDuration("BACKEND_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			CatalogueTTL:  getDuration("CATALOGUE_CACHE_TTL", 5*time.Minute),
			StatisticsTTL: getDuration("STATISTICS_CACHE_TTL", time.Minute),
			DraftTTL:      getDuration("DRAFT_TTL", 12*time.Hour),
		},
		Orders: OrdersConfig{
			WalkInClientID:   int64(getInt("WALKIN_CLIENT_ID", 0)),
			RetailContractID: int64(getInt("RETAIL_CONTRACT_ID", 0)),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			Path:  getEnv("LOG_PATH", "./logs/app.log"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не число, используется %d", key, value, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Предупреждение: %s=%q не длительность, используется %s", key, value, fallback)
		return fallback
	}
	return d
}

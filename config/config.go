// Package config provides configuration management for the packing service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendMemory  = "memory"
	BackendBadger  = "badger"
	BackendMongoDB = "mongodb"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Weather WeatherConfig
	Packing PackingConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	CORSOrigins     []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SwaggerUser     string
	SwaggerPass     string
}

// BreakerConfig holds circuit breaker thresholds.
type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// StorageConfig selects and configures the document store.
type StorageConfig struct {
	Backend       string
	BadgerPath    string
	MongoURI      string
	MongoDatabase string
	MongoBreaker  BreakerConfig
}

// WeatherConfig holds the live provider, cache and breaker settings.
type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
	CacheSize   int
	CacheTTL    time.Duration
	Breaker     BreakerConfig
}

// PackingConfig holds catalog and bag behavior switches.
type PackingConfig struct {
	SeedSampleData bool
	// StrictBagUniqueness rejects an item already packed in another bag of the trip.
	StrictBagUniqueness bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads an optional .env file, then builds a Config from the environment.
// Variables already set in the environment win over the file.
func Load() Config {
	_ = LoadDotEnv(".env")
	return FromEnv()
}

// LoadDotEnv loads the given env files. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// FromEnv builds a Config from environment variables only.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			CORSOrigins:     parseList(os.Getenv("CORS_ORIGINS")),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Storage: StorageConfig{
			Backend:       parseBackend(getEnv("STORAGE_BACKEND", BackendBadger)),
			BadgerPath:    getEnv("BADGER_PATH", "data/badger"),
			MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGODB_DATABASE", "packing_service"),
			MongoBreaker: BreakerConfig{
				FailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
				SuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
				Timeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
			},
		},
		Weather: WeatherConfig{
			APIKey:      strings.TrimSpace(getEnv("OPENWEATHER_API_KEY", "")),
			BaseURL:     getEnv("OPENWEATHER_BASE_URL", ""),
			HTTPTimeout: getEnvDuration("WEATHER_HTTP_TIMEOUT", 10*time.Second),
			CacheSize:   getEnvInt("WEATHER_CACHE_SIZE", 256),
			CacheTTL:    getEnvDuration("WEATHER_CACHE_TTL", 30*time.Minute),
			Breaker: BreakerConfig{
				FailureThreshold: getEnvInt("WEATHER_BREAKER_FAILURE_THRESHOLD", 3),
				SuccessThreshold: getEnvInt("WEATHER_BREAKER_SUCCESS_THRESHOLD", 1),
				Timeout:          getEnvDuration("WEATHER_BREAKER_TIMEOUT", time.Minute),
			},
		},
		Packing: PackingConfig{
			SeedSampleData:      getEnvBool("SEED_SAMPLE_DATA", false),
			StrictBagUniqueness: getEnvBool("STRICT_BAG_UNIQUENESS", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// parseBackend falls back to badger for unknown names.
func parseBackend(s string) string {
	switch b := strings.ToLower(strings.TrimSpace(s)); b {
	case BackendMemory, BackendBadger, BackendMongoDB:
		return b
	case "mongo":
		return BackendMongoDB
	default:
		return BackendBadger
	}
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	BaseURL   string
	UserAgent string
	ChromeBin string

	TokenCachePath    string
	ProbeEnabled      bool
	ProbeTimeout      time.Duration
	FetchTimeout      time.Duration
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	MaxAuthRetries    int
	RequestRPS        float64
	RateLimitMs       int

	OutputDir   string
	RegionsFile string
	LogLevel    string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	MaxRetries       int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL:   strings.TrimRight(getEnv("NAVER_LAND_BASE_URL", "https://new.land.naver.com"), "/"),
		UserAgent: getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"),
		ChromeBin: getEnv("CHROME_BIN", ""),

		TokenCachePath:    getEnv("TOKEN_CACHE_PATH", "./token_cache.json"),
		ProbeEnabled:      getEnvBool("TOKEN_PROBE", true),
		ProbeTimeout:      getEnvMs("PROBE_TIMEOUT_MS", 5000),
		FetchTimeout:      getEnvMs("FETCH_TIMEOUT_MS", 10000),
		NavigationTimeout: getEnvMs("NAVIGATION_TIMEOUT_MS", 60000),
		SettleDelay:       getEnvMs("SETTLE_DELAY_MS", 3000),
		MaxAuthRetries:    getEnvInt("MAX_AUTH_RETRIES", 1),
		RequestRPS:        getEnvFloat("REQUEST_RPS", 2),
		RateLimitMs:       getEnvInt("RATE_LIMIT_MS", 200),

		OutputDir:   getEnv("OUTPUT_DIR", "./output"),
		RegionsFile: getEnv("REGIONS_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "collector"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "collector123"),
		PostgresDB:       getEnv("POSTGRES_DB", "land_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvMs(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Millisecond
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

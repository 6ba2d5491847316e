package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LiveBaseURL is the public instance of the booking platform.
const LiveBaseURL = "https://automationintesting.online"

type Config struct {
	AppEnv       string
	BaseURL      string
	Username     string
	Password     string
	Timeout      time.Duration
	LogRequests  bool
	LogResponses bool
	MetricsAddr  string

	// stand-in platform
	FakeAddr   string
	FakeStore  string // memory|mysql
	FakeTokens string // memory|redis
	MySQLDSN   string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	TokenTTL   time.Duration
	LoginRPS   int
}

// Load reads the environment, after merging an optional .env file.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(env("ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load env file")
	}

	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		BaseURL:      env("BOOKER_BASE_URL", ""),
		Username:     env("BOOKER_USERNAME", "admin"),
		Password:     env("BOOKER_PASSWORD", "password"),
		Timeout:      duration("REQUEST_TIMEOUT", 30*time.Second),
		LogRequests:  boolean("LOG_REQUESTS", false),
		LogResponses: boolean("LOG_RESPONSES", false),
		MetricsAddr:  env("METRICS_ADDR", ""),
		FakeAddr:     env("FAKE_ADDR", ":3001"),
		FakeStore:    env("FAKE_STORE", "memory"),
		FakeTokens:   env("FAKE_TOKENS", "memory"),
		MySQLDSN:     env("MYSQL_DSN", "root:root@tcp(localhost:3306)/booker?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		TokenTTL:     duration("TOKEN_TTL", time.Hour),
		LoginRPS:     atoi("LOGIN_RPS", 0),
	}
	if c.Password == "password" && c.BaseURL != "" && c.BaseURL != LiveBaseURL {
		log.Warn().Str("base", c.BaseURL).Msg("using default credentials against a non-default platform")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func boolean(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func duration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

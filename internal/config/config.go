package config

import (
	"time"

	"github.com/andyagdw/word-wizards/internal/pkg/env"
)

type Config struct {
	AuthSecret string
	Provider   providerConfig
	Cache      cacheConfig
	DB         dbConfig
	Http       httpConfig
}

type providerConfig struct {
	BaseURL string
	APIKey  string
	Host    string
	Timeout time.Duration
	RPS     float64
	Burst   int
}

type cacheConfig struct {
	Backend  string
	Timezone *time.Location
	MaxKeys  int64
	MaxCost  int64
	Redis    redisConfig
}

type redisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type dbConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type httpConfig struct {
	ListenAddr      string
	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func FromEnv() Config {
	return Config{
		AuthSecret: env.RequireString("AUTH_SECRET"),
		Provider: providerConfig{
			BaseURL: env.String("PROVIDER_BASE_URL", "https://wordsapiv1.p.rapidapi.com/words"),
			APIKey:  env.String("PROVIDER_API_KEY", ""),
			Host:    env.String("PROVIDER_HOST", "wordsapiv1.p.rapidapi.com"),
			Timeout: env.Duration("PROVIDER_TIMEOUT", 8*time.Second),
			RPS:     env.Float64("PROVIDER_RPS", 2),
			Burst:   env.Int("PROVIDER_BURST", 4),
		},
		Cache: cacheConfig{
			Backend:  env.String("CACHE_BACKEND", "memory"),
			Timezone: env.Location("CACHE_TIMEZONE", defaultTimezone()),
			MaxKeys:  env.Int64("CACHE_MAX_KEYS", 1000),
			MaxCost:  env.Int64("CACHE_MAX_COST", 1000),
			Redis: redisConfig{
				Host:     env.String("REDIS_HOST", "localhost"),
				Port:     env.String("REDIS_PORT", "6379"),
				Password: env.String("REDIS_PASSWORD", ""),
				DB:       env.Int("REDIS_DB", 0),
			},
		},
		DB: dbConfig{
			Host:     env.String("DB_HOST", "localhost"),
			Port:     env.String("DB_PORT", "5432"),
			User:     env.String("DB_USER", "postgres"),
			Password: env.String("DB_PASSWORD", "password"),
			Name:     env.String("DB_NAME", "word_wizards"),
		},
		Http: httpConfig{
			ListenAddr:      env.String("HTTP_LISTEN_ADDR", ":8080"),
			IdleTimeout:     env.Duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ReadTimeout:     env.Duration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    env.Duration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: env.Duration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
	}
}

// defaultTimezone anchors the word-of-day boundary when CACHE_TIMEZONE is
// not set. The tzdata must be present; a broken default is a deploy error.
func defaultTimezone() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		panic("failed to load default timezone: " + err.Error())
	}

	return loc
}

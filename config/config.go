package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Server struct {
	// Storage
	Store       string `envconfig:"STORE" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	// HTTP
	Port           string   `envconfig:"PORT" default:"9090"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
	RateLimit      string   `envconfig:"RATE_LIMIT" default:"10-M"`
	RedisURL       string   `envconfig:"REDIS_URL"`
	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Events
	RabbitMQURL string `envconfig:"RABBITMQ_URL"`
	// Venue calendar used for "today"
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	// Logging
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogFile   string `envconfig:"LOG_FILE"`
}

type Client struct {
	APIURL    string `envconfig:"BOOKINGS_API_URL" default:"http://localhost:9090"`
	Token     string `envconfig:"BOOKING_TOKEN"`
	Timezone  string `envconfig:"TIMEZONE" default:"UTC"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogFile   string `envconfig:"LOG_FILE"`
}

// LoadServer reads .env when present, then the environment.
func LoadServer() (Server, error) {
	loadDotEnv()

	var c Server
	if err := envconfig.Process("", &c); err != nil {
		return Server{}, fmt.Errorf("failed to load server config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Server{}, err
	}

	return c, nil
}

func LoadClient() (Client, error) {
	loadDotEnv()

	var c Client
	if err := envconfig.Process("", &c); err != nil {
		return Client{}, fmt.Errorf("failed to load client config: %w", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return Client{}, fmt.Errorf("invalid TIMEZONE '%v': %w", c.Timezone, err)
	}

	return c, nil
}

func (c Server) validate() error {
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}

	switch c.Store {
	case StorePostgres:
		if len(c.DatabaseURL) == 0 {
			return fmt.Errorf("DATABASE_URL is required when STORE=%v", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE '%v'", c.Store)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE '%v': %w", c.Timezone, err)
	}

	return nil
}

func (c Server) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Client) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Debug("no .env file loaded", "err", err)
	}
}

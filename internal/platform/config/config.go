package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Storage backends selectable with STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Document number sources selectable with DOCUMENT_SEQUENCE.
const (
	SequenceUUID  = "uuid"
	SequenceRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageBackend string
	MigrationsPath string

	JWTSecret       string
	AdminAPIKeyHash string
	RateLimit       string
	CORSOrigins     []string
	PosthogAPIKey   string

	DocumentSequence string
	RedisURL         string

	AMQPURL              string
	AMQPExchange         string
	AMQPEventsQueue      string
	AMQPPostedRoutingKey string

	PaymentAccountByMethod bool
	ChartOfAccountsFile    string
}

// PublishesEvents reports whether journal-posted events should go to RabbitMQ.
func (c *Config) PublishesEvents() bool {
	return c.AMQPURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("ADMIN_API_KEY_HASH", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("DOCUMENT_SEQUENCE", SequenceUUID)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "ledger")
	v.SetDefault("AMQP_EVENTS_QUEUE", "ledger.business-events")
	v.SetDefault("AMQP_POSTED_ROUTING_KEY", "ledger.journal.posted")
	v.SetDefault("PAYMENT_ACCOUNT_BY_METHOD", false)
	v.SetDefault("CHART_OF_ACCOUNTS_FILE", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:         strings.ToLower(v.GetString("STORAGE_BACKEND")),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		AdminAPIKeyHash:        v.GetString("ADMIN_API_KEY_HASH"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		CORSOrigins:            splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:          v.GetString("POSTHOG_API_KEY"),
		DocumentSequence:       strings.ToLower(v.GetString("DOCUMENT_SEQUENCE")),
		RedisURL:               v.GetString("REDIS_URL"),
		AMQPURL:                v.GetString("AMQP_URL"),
		AMQPExchange:           v.GetString("AMQP_EXCHANGE"),
		AMQPEventsQueue:        v.GetString("AMQP_EVENTS_QUEUE"),
		AMQPPostedRoutingKey:   v.GetString("AMQP_POSTED_ROUTING_KEY"),
		PaymentAccountByMethod: v.GetBool("PAYMENT_ACCOUNT_BY_METHOD"),
		ChartOfAccountsFile:    v.GetString("CHART_OF_ACCOUNTS_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_BACKEND=memory, ledger data will not survive a restart.")
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: want %q or %q", cfg.StorageBackend, StoragePostgres, StorageMemory)
	}

	switch cfg.DocumentSequence {
	case SequenceUUID, SequenceRedis:
	default:
		return nil, fmt.Errorf("invalid DOCUMENT_SEQUENCE %q: want %q or %q", cfg.DocumentSequence, SequenceUUID, SequenceRedis)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.AdminAPIKeyHash == "" {
		log.Println("Warning: ADMIN_API_KEY_HASH not set. Administrative ledger routes are disabled.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL            string
	Port                   string
	IsProduction           bool
	EnableDBCheck          bool
	JWTSecret              string
	JWTIssuer              string
	CORSAllowedOrigins     []string
	RateLimit              string // ulule/limiter format, e.g. "100-M"
	AggregationConcurrency int
	CodeAssignmentRetries  int
	MigrationsPath         string
	LabelsFile             string
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "ifrs-ledger"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("AGGREGATION_CONCURRENCY", 8)
	v.SetDefault("CODE_ASSIGNMENT_RETRIES", 3)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LABELS_FILE", "")
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTIssuer:              v.GetString("JWT_ISSUER"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		AggregationConcurrency: v.GetInt("AGGREGATION_CONCURRENCY"),
		CodeAssignmentRetries:  v.GetInt("CODE_ASSIGNMENT_RETRIES"),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		LabelsFile:             v.GetString("LABELS_FILE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	if cfg.AggregationConcurrency <= 0 {
		log.Printf("Warning: Invalid AGGREGATION_CONCURRENCY (%d). Defaulting to 8.\n", cfg.AggregationConcurrency)
		cfg.AggregationConcurrency = 8
	}
	if cfg.CodeAssignmentRetries < 0 {
		log.Printf("Warning: Invalid CODE_ASSIGNMENT_RETRIES (%d). Defaulting to 3.\n", cfg.CodeAssignmentRetries)
		cfg.CodeAssignmentRetries = 3
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	return cfg
}

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Gotenberg is the HTML-to-PDF rendering service used by report export.
	GotenbergURL     string
	GotenbergTimeout time.Duration

	// CashAccountCode is the contra account used when settling titles.
	CashAccountCode string

	// Rate limiting (requests per period, e.g. "100-M").
	RateLimit string

	// BootstrapAdminUsername and BootstrapAdminPassword seed the first
	// ADMIN user on an empty users table. Seeding is skipped while the
	// password is unset.
	BootstrapAdminUsername string
	BootstrapAdminPassword string

	// AllowedOrigins restricts CORS in production; ignored otherwise.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "contabil-api")
	viper.SetDefault("GOTENBERG_URL", "http://localhost:3000")
	viper.SetDefault("GOTENBERG_TIMEOUT", "30s")
	viper.SetDefault("CASH_ACCOUNT_CODE", "1.1.1")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "admin")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GotenbergURL = viper.GetString("GOTENBERG_URL")
	gotenbergTimeoutStr := viper.GetString("GOTENBERG_TIMEOUT")
	gotenbergTimeout, err := time.ParseDuration(gotenbergTimeoutStr)
	if err != nil {
		gotenbergTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for GOTENBERG_TIMEOUT ('%s'). Defaulting to %s.\n", gotenbergTimeoutStr, gotenbergTimeout.String())
	}
	cfg.GotenbergTimeout = gotenbergTimeout

	cfg.CashAccountCode = viper.GetString("CASH_ACCOUNT_CODE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	if cfg.BootstrapAdminPassword == "" {
		log.Println("Warning: BOOTSTRAP_ADMIN_PASSWORD not set. Admin seeding is disabled; an empty database stays without users.")
	}
	if origins := viper.GetString("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}

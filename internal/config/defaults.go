package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer     = "go-portfolio"
	defaultTokenDuration   = 12 * time.Hour
	defaultHTTPAddress     = "localhost:3000"
	defaultAdapterAddress  = "http://localhost:3000"
	defaultRequestTimeout  = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 10
	defaultLoginRateLimit  = 1
	defaultLoginRateBurst  = 5
	defaultSessionPath     = "portfolio-session.db"
)

// defaultConfig returns the values used for every field no other source set.
// Secrets and the database DSN have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB:      DB{MaxOpenConns: defaultMaxOpenConns},
			Session: Session{Path: defaultSessionPath},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  []string{"*"},
			LoginRateLimit:  defaultLoginRateLimit,
			LoginRateBurst:  defaultLoginRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// win over .env values (godotenv.Load never overrides existing vars).
//
// Recognized variables:
//
//	ENDPOINT_ADDR      HTTP bind address
//	DATABASE_DSN       PostgreSQL DSN
//	SECRET_KEY         access-token HMAC secret
//	ACCESS_TOKEN_TTL   access token validity, minutes
//	MAX_DB_CONNS       maximum open database connections
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenTTL = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("MAX_DB_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxDBConns = n
		}
	}
}

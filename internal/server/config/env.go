package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first when one exists. Unset variables leave the current
// values untouched.
func parseEnv(config *Config) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString(&config.HTTPAddr, "MOCKVIEW_ADDR")
	setString(&config.DatabaseDSN, "MOCKVIEW_DATABASE_DSN")
	setString(&config.RedisURL, "MOCKVIEW_REDIS_URL")
	setString(&config.SecretKey, "MOCKVIEW_SECRET_KEY")
	setString(&config.FrontendOrigin, "MOCKVIEW_FRONTEND_URL")
	setString(&config.S3RootUser, "MOCKVIEW_S3_USER")
	setString(&config.S3RootPassword, "MOCKVIEW_S3_PASSWORD")
	setString(&config.S3Bucket, "MOCKVIEW_S3_BUCKET")
	setString(&config.S3Region, "MOCKVIEW_S3_REGION")
	setString(&config.S3BaseEndpoint, "MOCKVIEW_S3_ENDPOINT")

	if v, ok := os.LookupEnv("MOCKVIEW_RATELIMIT_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.RateLimitEnabled = b
		}
	}
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mockview/mockview/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Durations are given in minutes. After unmarshalling,
// set fields are copied into the runtime Config.
type JsonConfig struct {
	HTTPAddr                   *string  `json:"http_addr"`
	DatabaseDSN                *string  `json:"database_dsn"`
	RedisURL                   *string  `json:"redis_url"`
	SecretKey                  *string  `json:"secret_key"`
	AccessTokenValidityMinutes *int     `json:"access_token_validity_minutes"`
	FrontendOrigin             *string  `json:"frontend_origin"`
	RateLimitEnabled           *bool    `json:"rate_limit_enabled"`
	RateLimitRPS               *float64 `json:"rate_limit_rps"`
	RateLimitBurst             *int     `json:"rate_limit_burst"`
	S3RootUser                 *string  `json:"s3_root_user"`
	S3RootPassword             *string  `json:"s3_root_password"`
	S3Bucket                   *string  `json:"s3_bucket"`
	S3Region                   *string  `json:"s3_region"`
	S3BaseEndpoint             *string  `json:"s3_base_endpoint"`
}

// parseJson loads configuration from the JSON file named by the -c/-config
// flags, if any. Absent keys keep their current values; unreadable or
// invalid files panic, configuration being unusable at that point.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.HTTPAddr != nil {
		config.HTTPAddr = *c.HTTPAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.RedisURL != nil {
		config.RedisURL = *c.RedisURL
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityMinutes != nil {
		config.AccessTokenValidity = time.Duration(*c.AccessTokenValidityMinutes) * time.Minute
	}
	if c.FrontendOrigin != nil {
		config.FrontendOrigin = *c.FrontendOrigin
	}
	if c.RateLimitEnabled != nil {
		config.RateLimitEnabled = *c.RateLimitEnabled
	}
	if c.RateLimitRPS != nil {
		config.RateLimitRPS = *c.RateLimitRPS
	}
	if c.RateLimitBurst != nil {
		config.RateLimitBurst = *c.RateLimitBurst
	}
	if c.S3RootUser != nil {
		config.S3RootUser = *c.S3RootUser
	}
	if c.S3RootPassword != nil {
		config.S3RootPassword = *c.S3RootPassword
	}
	if c.S3Bucket != nil {
		config.S3Bucket = *c.S3Bucket
	}
	if c.S3Region != nil {
		config.S3Region = *c.S3Region
	}
	if c.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *c.S3BaseEndpoint
	}
}

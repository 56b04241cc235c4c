package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment override earlier layers.
type envConfig struct {
	Addr                  *string        `env:"ADDRESS"`
	DatabaseDSN           *string        `env:"DATABASE_DSN"`
	SecretKey             *string        `env:"SECRET_KEY"`
	TokenValidityDuration *time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	BcryptCost            *int           `env:"BCRYPT_COST"`
}

// parseEnv overlays environment variable values onto the target Config.
// Unset variables leave the existing values untouched. Malformed values
// panic, matching the hard-fail policy of the flags layer.
func parseEnv(config *Config) {
	e := &envConfig{}
	if err := env.Parse(e); err != nil {
		panic(err)
	}

	if e.Addr != nil {
		config.Addr = *e.Addr
	}
	if e.DatabaseDSN != nil {
		config.DatabaseDSN = *e.DatabaseDSN
	}
	if e.SecretKey != nil {
		config.SecretKey = *e.SecretKey
	}
	if e.TokenValidityDuration != nil {
		config.TokenValidityDuration = *e.TokenValidityDuration
	}
	if e.BcryptCost != nil {
		config.BcryptCost = *e.BcryptCost
	}
}

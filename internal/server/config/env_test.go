package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("TOKEN_VALIDITY_DURATION", "1h")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
	// untouched fields keep their defaults
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 10, c.BcryptCost)
}

func TestParseEnv_AllVariables(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:3000")
	t.Setenv("DATABASE_DSN", "postgres://u:p@h:5432/db")
	t.Setenv("SECRET_KEY", "k2")
	t.Setenv("TOKEN_VALIDITY_DURATION", "30m")
	t.Setenv("BCRYPT_COST", "4")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "127.0.0.1:3000", c.Addr)
	assert.Equal(t, "postgres://u:p@h:5432/db", c.DatabaseDSN)
	assert.Equal(t, "k2", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, 4, c.BcryptCost)
}

package config_test

import (
	"testing"
	"time"

	"inkpost/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoAndSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	_, err = config.Load()
	assert.Error(t, err, "JWT_SECRET still missing")

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "4444", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 20, cfg.PageLimit)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PAGE_LIMIT", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.PageLimit)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("JWT_SECRET", "s3cret")

	t.Setenv("TOKEN_TTL", "soon")
	_, err := config.Load()
	assert.Error(t, err)
	t.Setenv("TOKEN_TTL", "")

	t.Setenv("BCRYPT_COST", "99")
	_, err = config.Load()
	assert.Error(t, err)
	t.Setenv("BCRYPT_COST", "")

	t.Setenv("PAGE_LIMIT", "0")
	_, err = config.Load()
	assert.Error(t, err)
}

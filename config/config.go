package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything the server reads from the environment. It is
// built once in main and passed to the components that need it.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	FrontendURL   string
	CloudinaryURL string
	UploadDir     string
	PageLimit     int
}

// Load reads configuration from the environment. MONGODB_URI and
// JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "4444"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		DBName:        getenv("DB_NAME", "inkpost"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      time.Hour,
		BcryptCost:    bcrypt.DefaultCost,
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		PageLimit:     20,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q", v)
		}
		cfg.BcryptCost = n
	}
	if v := os.Getenv("PAGE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid PAGE_LIMIT %q", v)
		}
		cfg.PageLimit = n
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("FATESHIFT_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("FATESHIFT_JWT_ISSUER")
	if issuer == "" {
		issuer = "fateshift"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("FATESHIFT_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

type ServerConfig struct {
	HTTPAddr     string
	SyncAddr     string
	EphemerisURL string // empty disables the ephemeris collaborator
	ContentPath  string
}

func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		HTTPAddr:     ":8080",
		SyncAddr:     ":7070",
		EphemerisURL: os.Getenv("FATESHIFT_EPHEMERIS_URL"),
		ContentPath:  "data/content.yaml",
	}
	if addr := os.Getenv("FATESHIFT_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if addr := os.Getenv("FATESHIFT_SYNC_ADDR"); addr != "" {
		cfg.SyncAddr = addr
	}
	if p := os.Getenv("FATESHIFT_CONTENT_PATH"); p != "" {
		cfg.ContentPath = p
	}
	return cfg
}

package config

import "os"

type GGAuthConfig struct {
	// AllowedDomain restricts Google logins to one email domain when set.
	AllowedDomain string
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		AllowedDomain: os.Getenv("GOOGLE_ALLOWED_DOMAIN"),
	}
}

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenExpirationMs = int64(24 * time.Hour / time.Millisecond)
	defaultUploadDir         = "uploads"
	defaultGitHubAPIURL      = "https://api.github.com"
	defaultRequestTimeout    = 30 * time.Second
	defaultMaxUploadBytes    = 50 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenExpirationMs: defaultTokenExpirationMs,
			PasswordHashCost:  bcrypt.DefaultCost,
		},
		Storage: Storage{
			Files: Files{
				Backend:   FilesBackendLocal,
				UploadDir: defaultUploadDir,
			},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadBytes: defaultMaxUploadBytes,
		},
		OAuth: OAuth{
			GitHubAPIURL: defaultGitHubAPIURL,
		},
	}
}

package gateway

import "time"

// Config is a configuration for the payment gateway application.
type Config struct {
	HTTPAddr string `env:"GATEWAY_HTTP_ADDR" envDefault:"localhost:8080"`
	// BankBaseURL is the base URL of the acquiring bank.
	BankBaseURL string `env:"BANK_BASE_URL" envDefault:"http://localhost:8090"`
	// BankTimeout bounds a single authorization call; expiry surfaces to the
	// caller as a bank-unavailable failure.
	BankTimeout time.Duration `env:"BANK_TIMEOUT" envDefault:"10s"`
	// RepoBackend selects the payment store: "mem" (default) or "pg".
	RepoBackend string `env:"REPO_BACKEND" envDefault:"mem"`
	// DatabaseDSN is required when RepoBackend is "pg".
	DatabaseDSN string `env:"DB_DSN"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:8080",
		BankBaseURL: "http://localhost:8090",
		BankTimeout: 10 * time.Second,
		RepoBackend: "mem",
	}
}

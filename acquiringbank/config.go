package acquiringbank

// Config is a configuration for the acquiring bank simulator.
type Config struct {
	HTTPAddr string `env:"BANK_HTTP_ADDR" envDefault:"localhost:8090"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:8090",
	}
}

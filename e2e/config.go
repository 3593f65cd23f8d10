package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DATA_DIR keeps the badger files between runs when set, a temp dir is used otherwise
	DataDir string `envconfig:"E2E_DATA_DIR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_TIMEOUT bounds every wait on the observable state
	Timeout   time.Duration `envconfig:"E2E_TIMEOUT" default:"5s"`
	LogLevel  string        `envconfig:"E2E_LOG_LEVEL" default:"WARN"`
	JwtSecret string        `envconfig:"E2E_JWT_SECRET" default:"e2e-secret-e2e-secret"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RANGE_SERVER_ADDR points at a running server, e.g. http://localhost:8080
	ServerAddr string `envconfig:"RANGE_SERVER_ADDR"`
	// RANGE_SERVER_FILE is a file under the served root used for range requests
	File string `envconfig:"RANGE_SERVER_FILE" default:"/app.js"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

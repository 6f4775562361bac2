package internal

import (
	"fmt"
	"net"
	"range-server/errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	Directory         string        `env:"DIRECTORY,default=public" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=1s" validate:"gt=0"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

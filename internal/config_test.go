package internal

import (
	"os"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"HOST", "PORT", "DIRECTORY", "LOG_LEVEL", "HEARTBEAT_INTERVAL", "METRIC_INTERVAL"} {
		// Registers the restore, then removes the variable for this test
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("0.0.0.0", config.Host)
	req.Equal(8080, config.Port)
	req.Equal("public", config.Directory)
	req.Equal("INFO", config.LogLevel)
	req.Equal(30*time.Second, config.HeartbeatInterval)
	req.NoError(config.Validate())
	req.Equal("0.0.0.0:8080", config.Address())
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DIRECTORY", "media")
	t.Setenv("HOST", "127.0.0.1")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("127.0.0.1:9000", config.Address())
	req.Equal("media", config.Directory)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host:              "0.0.0.0",
		Port:              8080,
		Directory:         "public",
		LogLevel:          "INFO",
		HeartbeatInterval: time.Second,
		MetricInterval:    time.Second,
	}

	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Should succeed with valid config", func(c *Config) {}, false},
		{"Should fail if port is zero", func(c *Config) { c.Port = 0 }, true},
		{"Should fail if port is too large", func(c *Config) { c.Port = 70000 }, true},
		{"Should fail if directory is empty", func(c *Config) { c.Directory = "" }, true},
		{"Should fail on unknown log level", func(c *Config) { c.LogLevel = "LOUD" }, true},
		{"Should fail on zero heartbeat", func(c *Config) { c.HeartbeatInterval = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			config := valid
			tt.modify(&config)
			err := config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

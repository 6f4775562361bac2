package main

import (
	"bytes"
	"range-server/internal"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	config := internal.Config{
		Host:              "0.0.0.0",
		Port:              8080,
		Directory:         "public",
		LogLevel:          "INFO",
		HeartbeatInterval: 30 * time.Second,
	}

	printBanner(&out, config, "public")

	req.Contains(out.String(), "http://localhost:8080")
	req.Contains(out.String(), "0.0.0.0:8080")
	req.Contains(out.String(), "public")
}

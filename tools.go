//go:build tools
// +build tools

// Package range_server pins the code generators run by `go generate`
// (mockgen for the mocks package) in go.mod.
package range_server

import (
	_ "go.uber.org/mock/mockgen"
)

// Package env detects the execution environment and reads process
// environment flags.
package env

import (
	"os"
	"runtime"

	"filebridge/internal/domain"
)

// Key is the process environment variable that overrides detection.
const Key = "FILEBRIDGE_ENV"

// Detect determines which backend strategy fits the current runtime.
// An explicit override via FILEBRIDGE_ENV wins; otherwise a js/wasm build
// selects the browser strategy and every other build the local one. An
// unrecognized override value yields StrategyUnsupported, surfaced as an
// error on first use rather than at load time.
func Detect() domain.Strategy {
	return FromName(os.Getenv(Key))
}

// FromName maps an environment name to a strategy. Empty means autodetect.
func FromName(name string) domain.Strategy {
	switch name {
	case "local", "node", "server":
		return domain.StrategyLocal
	case "browser":
		return domain.StrategyBrowser
	case "":
		if runtime.GOOS == "js" {
			return domain.StrategyBrowser
		}
		return domain.StrategyLocal
	default:
		return domain.StrategyUnsupported
	}
}

// Flag reads a named key from the process environment and passes it through
// the caller-supplied interpretation function.
func Flag[T any](key string, interpret func(string) T) T {
	return interpret(os.Getenv(key))
}

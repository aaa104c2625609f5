package env

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"filebridge/internal/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected domain.Strategy
	}{
		{
			name:     "explicit local",
			value:    "local",
			expected: domain.StrategyLocal,
		},
		{
			name:     "node alias",
			value:    "node",
			expected: domain.StrategyLocal,
		},
		{
			name:     "server alias",
			value:    "server",
			expected: domain.StrategyLocal,
		},
		{
			name:     "explicit browser",
			value:    "browser",
			expected: domain.StrategyBrowser,
		},
		{
			name:     "autodetect defaults to local",
			value:    "",
			expected: domain.StrategyLocal,
		},
		{
			name:     "unknown value is unsupported",
			value:    "mainframe",
			expected: domain.StrategyUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(Key, tt.value)
			assert.Equal(t, tt.expected, Detect())
		})
	}
}

func TestFlag(t *testing.T) {
	t.Setenv("FILEBRIDGE_DEBUG", "true")
	enabled := Flag("FILEBRIDGE_DEBUG", func(v string) bool {
		b, _ := strconv.ParseBool(v)
		return b
	})
	assert.True(t, enabled)

	t.Setenv("FILEBRIDGE_LIMIT", "42")
	limit := Flag("FILEBRIDGE_LIMIT", func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	})
	assert.Equal(t, 42, limit)

	missing := Flag("FILEBRIDGE_DOES_NOT_EXIST", func(v string) string { return v })
	assert.Equal(t, "", missing)
}

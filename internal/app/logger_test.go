package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerHandlerSelection(t *testing.T) {
	pretty := NewLogger(&Config{AppEnv: "development", LogFormat: "pretty"})
	_, ok := pretty.Handler().(*slog.TextHandler)
	assert.True(t, ok, "development pretty format uses the text handler")

	jsonFmt := NewLogger(&Config{AppEnv: "development", LogFormat: "json"})
	_, ok = jsonFmt.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "explicit json format uses the JSON handler")

	// Production forces JSON even when the format asks for text.
	prod := NewLogger(&Config{AppEnv: "production", LogFormat: "pretty"})
	_, ok = prod.Handler().(*slog.JSONHandler)
	assert.True(t, ok, "production always logs JSON")
}

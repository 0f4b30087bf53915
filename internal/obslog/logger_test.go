package obslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Debug("debug line")
	l.Info("info line")
	assert.Empty(t, buf.String())

	l.Warn("warn line")
	assert.Contains(t, buf.String(), "[WARN] warn line")

	l.Error("error %d", 42)
	assert.Contains(t, buf.String(), "[ERROR] error 42")
}

func TestParseLevelUnknownDefaultsToInfo(t *testing.T) {
	require.Equal(t, Info, ParseLevel("trace"))
	require.Equal(t, Debug, ParseLevel("debug"))
}

func TestDefaultIsSilent(t *testing.T) {
	// Default must never write anywhere a test (or caller) can observe;
	// it exists purely so code can call through a non-nil *Logger.
	Default.Debug("x")
	Default.Info("x")
	Default.Warn("x")
	Default.Error("x")
}

func TestNewDefaultsOutputToStderrWithoutPanic(t *testing.T) {
	l := New(Config{Level: "info"})
	assert.NotPanics(t, func() { l.Info("hello") })
}

func TestNilLoggerIsSafeToLogThrough(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

func TestFormatPrefixesTag(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf})
	l.Info("value=%s", "ok")
	require.True(t, strings.Contains(buf.String(), "[INFO] value=ok"))
}

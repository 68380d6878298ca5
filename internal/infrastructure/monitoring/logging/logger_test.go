package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestLoggerEmitsStructuredFields(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	log.Info("analysis complete",
		String("risk_level", "LOW"),
		Int("score", 82),
		Bool("cached", false),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "analysis complete", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "LOW", fields["risk_level"])
	assert.Equal(t, int64(82), fields["score"])
	assert.Equal(t, false, fields["cached"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	log, logs := newObservedLogger(zapcore.WarnLevel)

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")
	log.Error("kept as well")

	assert.Equal(t, 2, logs.Len())
}

func TestWithAttachesFieldsToChildren(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	child := log.With(String("component", "detector"))
	child.Info("scan done")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "detector", logs.All()[0].ContextMap()["component"])

	// Parent must be unaffected.
	log.Info("plain")
	assert.NotContains(t, logs.All()[1].ContextMap(), "component")
}

func TestNamedBuildsDottedName(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)
	log.Named("app").Named("http").Info("request")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "app.http", logs.All()[0].LoggerName)
}

func TestErrField(t *testing.T) {
	assert.Equal(t, "<nil>", Err(nil).Value)
	assert.Equal(t, "boom", Err(errors.New("boom")).Value)
}

func TestDurationField(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)
	log.Info("timed", Duration("elapsed", 250*time.Millisecond))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, 250*time.Millisecond, logs.All()[0].ContextMap()["elapsed"])
}

func TestNewLoggerDefaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNopLoggerIsSilent(t *testing.T) {
	log := NewNopLogger()
	// Must not panic and must chain.
	log.With(String("k", "v")).Named("x").Info("ignored")
}

func TestDefaultLoggerSwap(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	log, logs := newObservedLogger(zapcore.InfoLevel)
	SetDefault(log)
	Default().Info("via default")
	assert.Equal(t, 1, logs.Len())

	// nil is ignored.
	SetDefault(nil)
	assert.Equal(t, log, Default())
}

//Personal.AI order the ending

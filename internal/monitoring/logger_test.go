package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("test message")
	assert.True(t, called, "custom logger was not called")

	called = false
	SetLogger(nil)
	Logf("test")
	assert.False(t, called, "no-op logger should not reach the previous callback")
}

func TestLogf_WritesThroughZap(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	core, logs := observer.New(zapcore.InfoLevel)
	Use(zap.New(core))
	defer Use(zap.NewNop())

	Logf("frame %d dropped", 7)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "frame 7 dropped", entries[0].Message)
}

func TestUse_ReplacesGlobals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)
	Use(l)
	defer Use(zap.NewNop())

	assert.Same(t, l, L())
	zap.L().Debug("via global", zap.String("stage", "decode"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "decode", logs.All()[0].ContextMap()["stage"])
}

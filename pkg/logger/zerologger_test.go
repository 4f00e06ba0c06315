package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("airports refreshed", Field{Key: "count", Value: 42})

	output := buf.String()
	assert.Contains(t, output, "airports refreshed")
	assert.Contains(t, output, `"count":42`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	assert.Contains(t, buf.String(), "debug-test")
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	assert.Empty(t, buf.String())
}

func TestZeroLogger_LevelIsPerLogger(t *testing.T) {
	prodBuf := &bytes.Buffer{}
	devBuf := &bytes.Buffer{}
	prod := NewWithWriter("production", prodBuf)
	dev := NewWithWriter("development", devBuf)

	prod.Debug("prod-debug")
	dev.Debug("dev-debug")

	assert.Empty(t, prodBuf.String())
	assert.Contains(t, devBuf.String(), "dev-debug")
}

func TestZeroLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Warn("warn-test", Field{Key: "iata", Value: "GRU"})

	output := buf.String()
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"iata":"GRU"`)
}

func TestZeroLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("fetch failed", Field{Key: "err", Value: errors.New("connection refused")})

	output := buf.String()
	assert.Contains(t, output, `"level":"error"`)
	assert.Contains(t, output, `"err":"connection refused"`)
}

func TestZeroLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "component", Value: "airport_job"})

	log.Info("tick")

	assert.Contains(t, buf.String(), `"component":"airport_job"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("ignored", Field{Key: "k", Value: "v"})
	})
}

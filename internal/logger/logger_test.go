package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugIsGatedByVerbose(t *testing.T) {
	var buffer bytes.Buffer

	SetOutput(&buffer)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Debug("hidden %s", "message")

	assert.Empty(t, buffer.String())

	SetVerbose(true)
	defer SetVerbose(false)

	Debug("visible %s", "message")

	assert.Contains(t, buffer.String(), "DEBUG visible message")
}

func TestWarnIsAlwaysEmitted(t *testing.T) {
	var buffer bytes.Buffer

	SetOutput(&buffer)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Warn("something %d", 42)

	assert.Contains(t, buffer.String(), "WARN  something 42")
}

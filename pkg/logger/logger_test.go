package logger

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	prev := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestDebugRespectsLevel(t *testing.T) {
	out := captureOutput(t, func() {
		NewLogger().Debug("hidden")
	})
	assert.NotContains(t, out, "hidden")

	out = captureOutput(t, func() {
		NewTestLogger().Debug("shown")
	})
	assert.Contains(t, out, "[DEBUG] shown")
}

func TestErrorIncludesCause(t *testing.T) {
	out := captureOutput(t, func() {
		NewLogger().Error("failed", errors.New("boom"))
	})
	assert.Contains(t, out, "[ERROR] failed")
	assert.Contains(t, out, "error=boom")
}

func TestWithFieldsCarriesAndMerges(t *testing.T) {
	base := NewTestLogger().WithFields(map[string]interface{}{"sheet": "Revenue"})

	out := captureOutput(t, func() {
		base.Info("exported")
	})
	assert.Contains(t, out, "sheet=Revenue")

	out = captureOutput(t, func() {
		base.WithFields(map[string]interface{}{"rows": 3}).Info("exported")
	})
	assert.Contains(t, out, "sheet=Revenue")
	assert.Contains(t, out, "rows=3")
}

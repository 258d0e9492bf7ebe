package app

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(format string, args ...interface{}) {
	r.lines = append(r.lines, "debug "+fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, "info "+fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warn(format string, args ...interface{}) {
	r.lines = append(r.lines, "warn "+fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Error(format string, args ...interface{}) {
	r.lines = append(r.lines, "error "+fmt.Sprintf(format, args...))
}

func TestSetLogger(t *testing.T) {
	previous := GetLogger()
	defer SetLogger(previous)

	rec := &recordingLogger{}
	SetLogger(rec)
	SetLogger(nil)

	GetLogger().Info("loaded %d entries", 7)
	GetLogger().Warn("slow")

	assert.Equal(t, []string{"info loaded 7 entries", "warn slow"}, rec.lines)
}

func TestFallbackLogger_DropsDebugAndInfo(t *testing.T) {
	var buf bytes.Buffer
	l := &fallbackLogger{output: &buf}

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("corpus %s is empty", "x.yaml")
	l.Error("failed")

	assert.Equal(t, "WARN: corpus x.yaml is empty\nERROR: failed\n", buf.String())
}

package scmlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSinkFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf, LevelWarn)

	sink.Log(LevelDebug, "debug line")
	sink.Log(LevelError, "error line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "error line")
}

func TestWriterSinkFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf, LevelInfo)
	sink.Log(LevelInfo, "count=%d name=%s", 3, "x")
	assert.True(t, strings.Contains(buf.String(), "count=3 name=x"))
}

func TestEmitIsNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(nil, LevelError, "should not panic")
	})
}

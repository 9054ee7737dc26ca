package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	prev := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	f()
	return buf.String()
}

func Test_defaultLogger_Levels(t *testing.T) {
	l := NewLogger(WARNING)

	out := captureOutput(func() {
		l.Debugf("debug %d", 1)
		l.Infof("info %d", 2)
		l.Warnf("warn %d", 3)
		l.Errorf("error %d", 4)
	})

	require.NotContains(t, out, "debug 1")
	require.NotContains(t, out, "info 2")
	require.Contains(t, out, "[WARN] warn 3")
	require.Contains(t, out, "[ERROR] error 4")
}

func Test_defaultLogger_Silence(t *testing.T) {
	l := NewLogger(SILENCE)

	out := captureOutput(func() {
		l.Errorf("should not appear")
	})

	require.Empty(t, out)
}

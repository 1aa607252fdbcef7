package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLoggerFormatsLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogrusLogger(&buf, false)

	l.Infof("transport", "connected to %s", "/dev/ttyACM0")
	l.Errorf("fb", "blit failed")
	l.Debugf("session", "hidden")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "[INFO] transport: connected to /dev/ttyACM0")
	assert.Contains(t, string(lines[1]), "[ERROR] fb: blit failed")
}

func TestLogrusLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogrusLogger(&buf, true)
	l.Debugf("session", "dropped: %s", "BTN:JOY")
	assert.Contains(t, buf.String(), "[DEBUG] session: dropped: BTN:JOY")
}

func TestLineFormatterExtraFields(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "slow frame",
		Data:    logrus.Fields{"ms": 40, componentField: "app", "frame": 7},
	}
	out, err := lineFormatter{}.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:00:00Z [WARNING] app: slow frame frame=7 ms=40\n", string(out))
}

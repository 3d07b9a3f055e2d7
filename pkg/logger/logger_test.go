package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithField("turn", 3).Debug("turn ended")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "turn ended", line["msg"])
	assert.Equal(t, float64(3), line["turn"])
}

func TestInitBadLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.False(t, isTerminal(&buf))
}

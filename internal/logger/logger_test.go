package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format emits one object per entry", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("debug", "JSON", &buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())

		log.WithField("route", "/api/state").Info("served")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "served", entry["msg"])
		assert.Equal(t, "/api/state", entry["route"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("text format and level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("warn", FormatText, &buf)
		require.NoError(t, err)

		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("unknown level is an error", func(t *testing.T) {
		_, err := New("loud", FormatText, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nowhere") })
}

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-repos-proxy/internal/config"
)

func TestNewWithOutput(t *testing.T) {
	t.Run("should emit JSON entries when format is json", func(t *testing.T) {
		// given
		var buf bytes.Buffer
		logger := NewWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)

		// when
		logger.WithField("username", "octocat").Debug("fetching")

		// then
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "fetching", entry["msg"])
		assert.Equal(t, "octocat", entry["username"])
		assert.Equal(t, "debug", entry["level"])
	})

	t.Run("should drop entries below the configured level", func(t *testing.T) {
		// given
		var buf bytes.Buffer
		logger := NewWithOutput(config.LogConfig{Level: "warn", Format: "text"}, &buf)

		// when
		logger.Info("hidden")

		// then
		assert.Empty(t, buf.String())
		assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	})

	t.Run("should default to info on an unknown level", func(t *testing.T) {
		// given
		var buf bytes.Buffer

		// when
		logger := NewWithOutput(config.LogConfig{Level: "loud", Format: "text"}, &buf)

		// then
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hooked-store/storefront/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "info", Format: "json"}}

	log := NewWithOutput(cfg, &buf)
	log.WithField("slot", "hooked_cart:abc").Info("cart saved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cart saved", entry["message"])
	assert.Equal(t, "info", entry["severity"])
	assert.Equal(t, "hooked_cart:abc", entry["slot"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_Level(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "warn", Format: "text"}}
	assert.Equal(t, logrus.WarnLevel, NewWithOutput(cfg, &bytes.Buffer{}).GetLevel())

	cfg.Logging.Level = "chatty"
	assert.Equal(t, logrus.InfoLevel, NewWithOutput(cfg, &bytes.Buffer{}).GetLevel())
}

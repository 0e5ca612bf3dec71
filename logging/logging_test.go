package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/catalinarubies/field-booking/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.log")

	logger, closeLog := logging.New(logging.Options{Format: "json", File: path})
	logger.With("component", "test").Info("booking accepted", "confirmation", "c-1")
	require.NoError(t, closeLog())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(raw, &line))
	assert.Equal(t, "booking accepted", line["msg"])
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "c-1", line["confirmation"])
}

func TestNewWithoutFile(t *testing.T) {
	logger, closeLog := logging.New(logging.Options{})

	assert.NotNil(t, logger)
	assert.NoError(t, closeLog())
}

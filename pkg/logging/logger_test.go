package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) LogEntry {
	t.Helper()
	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestJSONLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("assignment complete", Steps(3), Component("portassign"))

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "assignment complete", entry.Message)
	assert.EqualValues(t, 3, entry.Fields["steps"])
	assert.Equal(t, "portassign", entry.Fields["component"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("step trace")
	logger.Info("progress")
	assert.Zero(t, buf.Len(), "below-threshold entries should be dropped")

	logger.Warn("slow solve")
	assert.NotZero(t, buf.Len())
}

func TestJSONLogger_WithPresetsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(RunID("run-1"), HopRadius(3))
	child.Info("section extracted", Count(7))

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "run-1", entry.Fields["run_id"])
	assert.EqualValues(t, 3, entry.Fields["hop_radius"])
	assert.EqualValues(t, 7, entry.Fields["count"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARNING"))
	assert.Equal(t, InfoLevel, ParseLevel("bogus"))
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("ignored", Error(assert.AnError))
	assert.Equal(t, InfoLevel, logger.GetLevel())
}

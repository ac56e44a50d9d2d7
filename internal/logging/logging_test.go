package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("KST", 9*60*60)

	New(&buf, loc).Error("db_migration_failed", "component", "database")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "db_migration_failed", entry["msg"])
	assert.Equal(t, "database", entry["component"])

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	assert.Contains(t, ts, "+09:00")
	_, hasTime := entry["time"]
	assert.False(t, hasTime)
}

func TestLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, nil)

	logger.Warn("slow")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
}

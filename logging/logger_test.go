package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	log, err := New(LogConfig{Level: "debug", Format: "json", Output: logPath})
	require.NoError(t, err)

	log.Info("image deleted", "id", 42, "err", errors.New("boom"))
	log.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"image deleted"`)
	assert.Contains(t, string(data), `"id":42`)
	assert.Contains(t, string(data), `"err":"boom"`)
}

func TestConvertFieldsSkipsBadKeys(t *testing.T) {
	fields := convertFields("ok", 1, 2, "ignored", "dangling")
	assert.Len(t, fields, 1)
	assert.Equal(t, "ok", fields[0].Key)
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	log, err := New(LogConfig{Level: "chatty", Format: "text", Output: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
	assert.True(t, log.Core().Enabled(0))
}

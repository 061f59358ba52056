package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfigFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "pss-admin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://files.local/api\nproject_id: 3\n"), 0o600))
	t.Setenv("PSS_PAGE_SIZE", "25")

	InitCLIConfig(path)

	assert.Equal(t, "http://files.local/api", viper.GetString("base_url"))
	assert.Equal(t, int64(3), viper.GetInt64("project_id"))
	assert.Equal(t, 25, viper.GetInt("page_size"))
	assert.Empty(t, viper.GetString("token"))
}

func TestSaveCLIToken(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "pss-admin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project_id: 1\n"), 0o600))
	InitCLIConfig(path)

	require.NoError(t, SaveCLIToken("http://host/api", "tok"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "token: tok")
	assert.Contains(t, string(content), "base_url: http://host/api")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppConfig_FillDefaults(t *testing.T) {
	c := &AppConfig{}
	c.FillDefaults()

	require.Equal(t, "text", c.LogFormat)
	require.Equal(t, 2<<20, c.BufferSizeBytes)
}

func TestAppConfig_Validate(t *testing.T) {
	type testCase struct {
		name     string
		config   AppConfig
		expected int
	}

	testCases := []testCase{
		{name: "valid", config: AppConfig{LogFormat: "text", BufferSizeBytes: 1024}, expected: 0},
		{name: "unknown log format", config: AppConfig{LogFormat: "xml"}, expected: 1},
		{name: "negative buffer size", config: AppConfig{LogFormat: "json", BufferSizeBytes: -1}, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.config.Validate(), tc.expected)
		})
	}
}

func TestAppConfig_ParseFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("log_format: json\nbuffer_size_bytes: 4096\n"), 0o600))

	c := &AppConfig{}
	require.NoError(t, c.ParseFromFile(path))

	require.Equal(t, "json", c.LogFormat)
	require.Equal(t, 4096, c.BufferSizeBytes)
}

func TestAppConfig_ParseFromFile_EmptyPathUsesDefaults(t *testing.T) {
	c := &AppConfig{}
	require.NoError(t, c.ParseFromFile(""))

	require.Equal(t, "text", c.LogFormat)
}

func TestAppConfig_ParseFromFile_MissingFile(t *testing.T) {
	c := &AppConfig{}
	require.Error(t, c.ParseFromFile("/nonexistent/path/config.yaml"))
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
	assert.Equal(t, "mockview.db", c.SessionDBPath)
}

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("MOCKVIEW_API_URL", "http://api.test:5000/api")
	t.Setenv("MOCKVIEW_SESSION_DB", "/tmp/mockview-test.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://api.test:5000/api", c.APIBaseURL)
	assert.Equal(t, "/tmp/mockview-test.db", c.SessionDBPath)
}

func Test_parseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv("MOCKVIEW_API_URL", "")
	t.Setenv("MOCKVIEW_SESSION_DB", "")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
	assert.Equal(t, "mockview.db", c.SessionDBPath)
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")
	payload, err := json.Marshal(map[string]any{
		"api_base_url":    "http://json.test/api",
		"session_db_path": "/var/lib/mockview/session.db",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		var c Config
		c.LoadDefaults()
		parseJson(&c)

		assert.Equal(t, "http://json.test/api", c.APIBaseURL)
		assert.Equal(t, "/var/lib/mockview/session.db", c.SessionDBPath)
	})

	t.Run("no config flag leaves values alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		c := Config{APIBaseURL: "http://kept/api"}
		parseJson(&c)

		assert.Equal(t, "http://kept/api", c.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		var c Config
		require.Panics(t, func() { parseJson(&c) })
	})
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "http://flags.test/api", "-b", "flags.db"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://flags.test/api", c.APIBaseURL)
	assert.Equal(t, "flags.db", c.SessionDBPath)
}

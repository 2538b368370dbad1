package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should use defaults when config file is missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, Defaults(), cfg)
	})

	t.Run("should override defaults from yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "host: https://balanceu.example\nintro:\n  duration: 5s\nsession:\n  maxagedays: 7\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://balanceu.example", cfg.Host)
		assert.Equal(t, 5*time.Second, cfg.Intro.Duration)
		assert.Equal(t, 7, cfg.Session.MaxAgeDays)
		assert.Equal(t, 8181, cfg.Port)
	})

	t.Run("should override file values from environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: https://file.example\n"), 0644))
		t.Setenv("BALANCEU_HOST", "https://env.example")
		t.Setenv("BALANCEU_SESSION_SECRET", "from-env")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example", cfg.Host)
		assert.Equal(t, "from-env", cfg.Session.Secret)
	})
}

func TestLoad_WarnsAboutDefaultSessionSecret(t *testing.T) {
	t.Run("should warn when the default secret is in use", func(t *testing.T) {
		hook := logtest.NewGlobal()
		defer hook.Reset()

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultSessionSecret, cfg.Session.Secret)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "session.secret")
	})

	t.Run("should stay quiet when a secret is configured", func(t *testing.T) {
		t.Setenv("BALANCEU_SESSION_SECRET", "a-real-secret")
		hook := logtest.NewGlobal()
		defer hook.Reset()

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "a-real-secret", cfg.Session.Secret)
		for _, entry := range hook.AllEntries() {
			assert.NotEqual(t, logrus.WarnLevel, entry.Level)
		}
	})
}

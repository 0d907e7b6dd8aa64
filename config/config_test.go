package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codingconcepts/relstats/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GITHUB_TOKEN", "GH_TOKEN", "NO_COLOR", "RELSTATS_FORMAT", "RELSTATS_PER_PAGE", "RELSTATS_API_URL", "RELSTATS_TOKEN", "RELSTATS_NO_COLOR"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(flags(t))
	require.NoError(t, err)

	assert.Equal(t, Config{
		APIURL:  "https://api.github.com/",
		PerPage: 100,
		Format:  "markdown",
	}, cfg)
}

func TestLoadTokenPrecedence(t *testing.T) {
	isolate(t)

	t.Setenv("GH_TOKEN", "gh")
	cfg, err := Load(flags(t))
	require.NoError(t, err)
	assert.Equal(t, "gh", cfg.Token)

	t.Setenv("GITHUB_TOKEN", "github")
	cfg, err = Load(flags(t))
	require.NoError(t, err)
	assert.Equal(t, "github", cfg.Token)

	cfg, err = Load(flags(t, "--token", "flag"))
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.Token)
}

func TestLoadEmptyTokenEnvSkipped(t *testing.T) {
	isolate(t)

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "second")
	cfg, err := Load(flags(t))
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Token)
}

func TestLoadEnvAndFlags(t *testing.T) {
	isolate(t)

	t.Setenv("RELSTATS_FORMAT", "JSON")
	t.Setenv("RELSTATS_PER_PAGE", "30")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(flags(t, "-v"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 30, cfg.PerPage)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)

	cfg, err = Load(flags(t, "--format", "console", "--per-page", "10"))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, 10, cfg.PerPage)
}

func TestLoadNoColor(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "unset", want: false},
		{name: "no_color any value", env: map[string]string{"NO_COLOR": "yes"}, want: true},
		{name: "no_color false still set", env: map[string]string{"NO_COLOR": "false"}, want: true},
		{name: "prefixed", env: map[string]string{"RELSTATS_NO_COLOR": "true"}, want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			isolate(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(flags(t))
			require.NoError(t, err)
			assert.Equal(t, c.want, cfg.NoColor)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "relstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: console\napi-url: https://ghe.example.com/api/v3/\nper-page: 50\n"), 0o600))

	cfg, err := Load(flags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.APIURL)
	assert.Equal(t, 50, cfg.PerPage)

	cfg, err = Load(flags(t, "--config", path, "--format", "json"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadMissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := Load(flags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	var usage *models.UsageError
	assert.True(t, errors.As(err, &usage))
}

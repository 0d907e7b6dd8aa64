// Package config resolves relstats settings from flags, environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/codingconcepts/relstats/models"
	"github.com/codingconcepts/relstats/terminal"
)

// Setting keys, shared by flags, environment variables and the config
// file.
const (
	KeyToken   = "token"
	KeyAPIURL  = "api-url"
	KeyPerPage = "per-page"
	KeyFormat  = "format"
	KeyNoColor = "no-color"
	KeyVerbose = "verbose"
	KeyConfig  = "config"

	envPrefix = "RELSTATS"
	fileName  = "relstats"
)

// TokenEnv lists the environment variables checked for an API token. The
// first non-empty one wins.
var TokenEnv = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// Config contains the parameters we'll need to produce a report.
type Config struct {
	Token   string
	APIURL  string
	PerPage int
	Format  string
	NoColor bool
	Verbose bool
}

// RegisterFlags adds the settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyToken, "", "API token (defaults to $GITHUB_TOKEN, then $GH_TOKEN)")
	fs.String(KeyAPIURL, "https://api.github.com/", "API base URL")
	fs.Int(KeyPerPage, 100, "releases requested per page (1-100)")
	fs.StringP(KeyFormat, "f", "markdown", "output format: markdown, console or json")
	fs.Bool(KeyNoColor, false, "disable coloured console output")
	fs.BoolP(KeyVerbose, "v", false, "log requests to stderr")
	fs.String(KeyConfig, "", "config file (default is $XDG_CONFIG_HOME/relstats/relstats.yaml)")
}

// Load resolves the configuration for flags registered with RegisterFlags.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(append([]string{KeyToken}, TokenEnv...)...); err != nil {
		return Config{}, err
	}

	if err := readConfigFile(v, v.GetString(KeyConfig)); err != nil {
		return Config{}, err
	}

	return Config{
		Token:   v.GetString(KeyToken),
		APIURL:  v.GetString(KeyAPIURL),
		PerPage: v.GetInt(KeyPerPage),
		Format:  strings.ToLower(v.GetString(KeyFormat)),
		NoColor: v.GetBool(KeyNoColor) || terminal.NoColorEnv(),
		Verbose: v.GetBool(KeyVerbose),
	}, nil
}

// readConfigFile reads path, or searches the default locations when path
// is empty. Only an explicitly named file has to exist.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return models.NewUsageError("reading config file %q: %v", path, err)
		}
		return nil
	}

	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, fileName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return models.NewUsageError("reading config file: %v", err)
	}

	return nil
}

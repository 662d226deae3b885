// Package config loads chlog settings from defaults, an optional project
// file, and environment variables, in increasing order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/chlog/internal/errors"
)

// DefaultFile is the project configuration file looked up in the working
// directory.
const DefaultFile = ".chlog.yml"

// envPrefix namespaces the environment variables chlog reads, e.g.
// CHLOG_PATH or CHLOG_REMOTE_OWNER.
const envPrefix = "CHLOG_"

// Remote overrides the repository used for version-compare links. When
// unset, the origin remote of the enclosing git repository is used.
type Remote struct {
	Owner string `koanf:"owner"`
	Repo  string `koanf:"repo"`
}

// IsSet reports whether both halves of the override are present.
func (r Remote) IsSet() bool {
	return r.Owner != "" && r.Repo != ""
}

// Configuration holds all chlog settings.
type Configuration struct {
	// Path of the changelog file.
	Path string `koanf:"path"`
	// Editor command for review sessions. Falls back to $VISUAL and
	// $EDITOR when empty.
	Editor string `koanf:"editor"`
	// Remote link override.
	Remote Remote `koanf:"remote"`
}

func defaults() map[string]any {
	return map[string]any{
		"path":         "CHANGELOG.md",
		"editor":       "",
		"remote.owner": "",
		"remote.repo":  "",
	}
}

// Load builds the effective configuration. configPath overrides the
// default project file location; a missing default file is fine, a missing
// explicit one is an error.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, errors.WrapWithMessage(err, errors.Runtime, "setting config defaults")
		}
	}

	path := configPath
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.WrapWithMessage(err, errors.InvalidData, "parsing config file")
		}
	} else if configPath != "" {
		return nil, errors.NewNotFoundError("config file " + configPath + " does not exist")
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Runtime, "reading environment")
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.WrapWithMessage(err, errors.InvalidData, "unmarshaling config")
	}
	return &cfg, nil
}

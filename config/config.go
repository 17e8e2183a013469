package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/clust4j/algolog/core"
	"github.com/clust4j/algolog/logger"
)

// envPrefix selects the environment variables the facility reads.
const envPrefix = "ALGOLOG_"

// maxConfigFileSize bounds config files so a bad path cannot balloon
// memory.
const maxConfigFileSize = 1024 * 1024

// Config is the externally settable state of a logger. Zero-valued
// Level, Root, and Properties leave the logger's settings alone;
// PrintAll and Flags apply as given.
type Config struct {
	// Level is the one-based sink threshold index (1 trace .. 6
	// fatal). Zero leaves the threshold alone.
	Level int `koanf:"level"`

	// PrintAll echoes every record to the console when true.
	PrintAll bool `koanf:"printall"`

	// Root is the location the log directory is derived from.
	Root string `koanf:"root"`

	// Properties is the path of a sink properties file.
	Properties string `koanf:"properties"`

	// Flags switches per-category verbose output by canonical category
	// name, e.g. flags: {kmeans: false}.
	Flags map[string]bool `koanf:"flags"`
}

// Load reads configuration from ALGOLOG_* environment variables:
//
//	ALGOLOG_LEVEL=4
//	ALGOLOG_PRINTALL=true
//	ALGOLOG_ROOT=/var/data
//	ALGOLOG_PROPERTIES=/etc/clust4j/log.properties
//	ALGOLOG_FLAGS_KMEANS=false
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// LoadFile reads configuration from a YAML file, then overrides it
// with environment variables.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, errors.Errorf("config file %s too large: %d bytes", path, info.Size())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// loadEnv layers ALGOLOG_* variables onto k. The key transform strips
// the prefix, lowercases, and turns the first underscore into the
// section delimiter: ALGOLOG_FLAGS_KMEANS -> flags.kmeans.
func loadEnv(k *koanf.Koanf) error {
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	return errors.Wrap(err, "loading environment")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// Apply pushes the configuration onto l. Root and Properties must land
// before the first emission to influence sink creation; threshold and
// flags take effect immediately either way. Unknown category names and
// out-of-range levels are rejected without partially applying the rest.
func (c *Config) Apply(l *logger.Logger) error {
	cats := make(map[core.Category]bool, len(c.Flags))
	for name, on := range c.Flags {
		cat, err := core.ParseCategory(name)
		if err != nil {
			return err
		}
		cats[cat] = on
	}
	if c.Level != 0 {
		if _, err := core.SeverityFromIndex(c.Level); err != nil {
			return err
		}
	}

	if c.Root != "" {
		l.SetRoot(c.Root)
	}
	if c.Properties != "" {
		l.SetProperties(c.Properties)
	}
	if c.Level != 0 {
		if err := l.SetLogLevel(c.Level); err != nil {
			return err
		}
	}
	l.SetPrintAll(c.PrintAll)
	for cat, on := range cats {
		if on {
			l.SetFlag(cat)
		} else {
			l.UnsetFlag(cat)
		}
	}
	return nil
}

// Configure is the one-call path: load from the environment and apply
// to the default logger.
func Configure() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	return cfg.Apply(logger.Default())
}

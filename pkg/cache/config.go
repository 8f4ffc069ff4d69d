// Package cache persists fetched OWO catalog payloads on disk, keyed by
// source URL, together with their ETag and fetch timestamp.
package cache

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the cache location and the configured catalog sources.
type Config interface {
	BasePath() string
	URLs() []string
	LastCollection() string
	RememberCollection(name string) error
}

// LoadConfig reads the .owo config file (current directory, OWO_CONFIG_PATH
// override, or home directory) plus OWO_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.owo.db")
	viper.SetConfigName(".owo") // .yaml is implicit
	viper.SetEnvPrefix("OWO")
	viper.AutomaticEnv()

	if override := os.Getenv("OWO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:       path,
		Sources:    viper.GetStringSlice("urls"),
		Collection: viper.GetString("collection"),
	}, nil
}

type fileConfig struct {
	Path       string   `json:"path"`
	Sources    []string `json:"urls"`
	Collection string   `json:"collection"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) URLs() []string { return f.Sources }

func (f *fileConfig) LastCollection() string { return f.Collection }

// RememberCollection stores the last active collection so the next picker
// open starts there. Without a config file the preference is dropped
// silently; remembering is a convenience, not a requirement.
func (f *fileConfig) RememberCollection(name string) error {
	if name == f.Collection {
		return nil
	}
	f.Collection = name
	viper.Set("collection", name)
	if viper.ConfigFileUsed() == "" {
		return nil
	}
	return viper.WriteConfig()
}

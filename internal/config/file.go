package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"lss/internal/domain"
)

const (
	configDirName  = "lss"
	configFileName = "config.yaml"
)

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// LoadConfig returns the defaults overlaid with the user's config file. A
// missing file is not an error.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFile(path)
}

func LoadConfigFile(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.All != nil {
		merged.All = *stored.All
	}
	if stored.IgnoreBackups != nil {
		merged.IgnoreBackups = *stored.IgnoreBackups
	}
	if stored.Ignore != nil {
		merged.Ignore = append([]string(nil), stored.Ignore...)
	}
	if stored.Sort != nil {
		merged.SortMode = domain.ParseSortMode(*stored.Sort, base.SortMode)
	}
	if stored.Reverse != nil {
		merged.Reverse = *stored.Reverse
	}
	if stored.Inode != nil {
		merged.Inode = *stored.Inode
	}
	if stored.Timeout != nil {
		merged.Timeout = seconds(*stored.Timeout)
	}
	if stored.CrossMount != nil {
		merged.CrossMount = *stored.CrossMount
	}
	if stored.Dereference != nil {
		merged.Dereference = *stored.Dereference
	}
	if stored.MaxDepth != nil {
		merged.MaxDepth = *stored.MaxDepth
	}
	if stored.Color != nil {
		merged.Color = *stored.Color
	}
	if stored.Markers != nil {
		merged.Markers = *stored.Markers
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	if stored.KeyBindings != nil {
		merged.KeyBindings = stored.KeyBindings
	}
	return merged
}

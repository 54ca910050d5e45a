package config

import (
	"time"

	"lss/internal/domain"
)

type Config struct {
	Paths         []string
	All           bool
	IgnoreBackups bool
	Ignore        []string
	SortMode      domain.SortMode
	Reverse       bool
	Inode         bool
	Timeout       time.Duration
	CrossMount    bool
	Dereference   bool
	MaxDepth      int
	Color         string
	Markers       bool
	Browse        bool
	Debug         bool
	Version       bool
	Theme         string
	KeyBindings   map[string]string
}

// fileConfig mirrors the YAML file; nil fields keep the default.
type fileConfig struct {
	All           *bool             `yaml:"all"`
	IgnoreBackups *bool             `yaml:"ignoreBackups"`
	Ignore        []string          `yaml:"ignore"`
	Sort          *string           `yaml:"sort"`
	Reverse       *bool             `yaml:"reverse"`
	Inode         *bool             `yaml:"inode"`
	Timeout       *float64          `yaml:"timeout"`
	CrossMount    *bool             `yaml:"crossMount"`
	Dereference   *bool             `yaml:"dereference"`
	MaxDepth      *int              `yaml:"maxDepth"`
	Color         *string           `yaml:"color"`
	Markers       *bool             `yaml:"markers"`
	Theme         *string           `yaml:"theme"`
	KeyBindings   map[string]string `yaml:"keyBindings"`
}

func DefaultConfig() Config {
	return Config{
		Paths:       []string{"."},
		SortMode:    domain.SortByName,
		Timeout:     500 * time.Millisecond,
		MaxDepth:    1,
		Color:       "auto",
		Markers:     true,
		Theme:       "dark",
		KeyBindings: map[string]string{},
	}
}

func seconds(value float64) time.Duration {
	return time.Duration(value * float64(time.Second))
}

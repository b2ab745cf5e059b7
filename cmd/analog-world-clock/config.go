package main

import (
	"fmt"
	"os"
	"time"

	"github.com/k-yomo/analog-world-clock/tzset"
	"github.com/k-yomo/analog-world-clock/worldclock"
	"gopkg.in/yaml.v3"
)

const defaultTitle = "24 Timezone Analog Clocks"

type fileConfig struct {
	Timezones       []string      `yaml:"timezones"`
	BackupTimezones []string      `yaml:"backupTimezones"`
	Count           int           `yaml:"count"`
	Diameter        int           `yaml:"diameter"`
	Columns         int           `yaml:"columns"`
	Interval        time.Duration `yaml:"interval"`
	Output          string        `yaml:"output"`
	Title           string        `yaml:"title"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Timezones:       append([]string(nil), tzset.DefaultTimezones...),
		BackupTimezones: append([]string(nil), tzset.DefaultBackups...),
		Count:           tzset.DefaultCount,
		Diameter:        worldclock.DefaultDiameter,
		Columns:         worldclock.DefaultColumns,
		Interval:        worldclock.DefaultInterval,
		Output:          "clocks.svg",
		Title:           defaultTitle,
	}
}

// loadConfig overlays the YAML file at path on the defaults.
// An empty path returns the defaults.
func loadConfig(path string) (*fileConfig, error) {
	config := defaultFileConfig()
	if path == "" {
		return config, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

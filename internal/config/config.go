// Package config loads the tunable analysis thresholds.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Thresholds controls when the risk pass flags a task or pattern.
type Thresholds struct {
	// SlackDays flags tasks whose slack exceeds this many days.
	SlackDays int `mapstructure:"slack_days"`
	// LongTaskDays flags critical tasks longer than this many days.
	LongTaskDays int `mapstructure:"long_task_days"`
	// MaxDependencies flags tasks with more prerequisites than this.
	MaxDependencies int `mapstructure:"max_dependencies"`
	// TightSlack marks the whole schedule as tight when average slack falls
	// below this many days.
	TightSlack float64 `mapstructure:"tight_slack"`
}

// Default returns the thresholds used when no config file is present.
func Default() Thresholds {
	return Thresholds{
		SlackDays:       7,
		LongTaskDays:    14,
		MaxDependencies: 3,
		TightSlack:      2,
	}
}

// Load reads thresholds from the given file, falling back to defaults for
// any unset key. An empty path searches for slackline.yaml in the working
// directory; a missing search file is not an error.
func Load(path string) (Thresholds, error) {
	v := viper.New()
	v.SetEnvPrefix("SLACKLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("slack_days", def.SlackDays)
	v.SetDefault("long_task_days", def.LongTaskDays)
	v.SetDefault("max_dependencies", def.MaxDependencies)
	v.SetDefault("tight_slack", def.TightSlack)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Thresholds{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("slackline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Thresholds{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var th Thresholds
	if err := v.Unmarshal(&th); err != nil {
		return Thresholds{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return th, nil
}

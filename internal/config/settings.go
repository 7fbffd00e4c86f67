package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are process-wide preferences, separate from the widget document.
type Settings struct {
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
	Theme    string `mapstructure:"theme"`
	OutDir   string `mapstructure:"out_dir"`
	Memo     bool   `mapstructure:"memo"`
	PNGWidth int    `mapstructure:"png_width"`
}

const EnvPrefix = "GAUGEKIT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", "svg")
	v.SetDefault("theme", "minimal")
	v.SetDefault("out_dir", ".")
	v.SetDefault("memo", true)
	v.SetDefault("png_width", 400)
}

// LoadSettings reads settings from path (optional) with GAUGEKIT_*
// environment overrides. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gaugekit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.Format = strings.ToLower(s.Format)
	return s, nil
}

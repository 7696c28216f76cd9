package cli

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the deckctl configuration.
type Config struct {
	Server  string        `mapstructure:"server"`
	Timeout time.Duration `mapstructure:"timeout"`
	Output  OutputConfig  `mapstructure:"output"`
}

type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
	Width  int  `mapstructure:"width"`
}

// LoadConfig reads cfgFile, or deckctl.yaml from the working directory and
// $HOME/.config/deckctl, then DECKCTL_* environment variables.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("deckctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/deckctl")
	}

	v.SetEnvPrefix("DECKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server", "http://localhost:9000")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("output.colors", true)
	v.SetDefault("output.width", 80)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server URL: %q", cfg.Server)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", cfg.Timeout)
	}
	if cfg.Output.Width < 20 {
		return fmt.Errorf("output width must be at least 20, got %d", cfg.Output.Width)
	}
	return nil
}

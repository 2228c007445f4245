package kit

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config is the environment-driven runtime configuration shared by all
// services. Keys map one to one onto environment variables.
type Config struct {
	Port            int           `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	MetricsToken    string        `mapstructure:"metrics_token"`
	StaticDir       string        `mapstructure:"static_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Defaults struct {
	Port      int
	StaticDir string
}

func LoadConfig(def Defaults) (Config, error) {
	v := viper.New()

	v.SetDefault("port", def.Port)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_token", "")
	v.SetDefault("static_dir", def.StaticDir)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

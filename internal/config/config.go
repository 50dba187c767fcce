package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	HostURL        string        `mapstructure:"HOST_URL"`
	HostToken      string        `mapstructure:"HOST_TOKEN"`
	HostTimeout    time.Duration `mapstructure:"HOST_TIMEOUT"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	DevUserID      string        `mapstructure:"DEV_USER_ID"`
	DefaultLocale  string        `mapstructure:"DEFAULT_LOCALE"`
	MaxSessions    int           `mapstructure:"MAX_SESSIONS"`
}

func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("HOST_URL", "")
	v.SetDefault("HOST_TOKEN", "")
	v.SetDefault("HOST_TIMEOUT", "10s")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DEV_USER_ID", "dev-agent")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("MAX_SESSIONS", 1000)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

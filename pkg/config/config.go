package config

import "github.com/spf13/viper"

type Config struct {
	Port     string
	Env      string
	DataFile string
}

// Load reads configuration from the environment with defaults suitable for
// local development
func Load() *Config {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_FILE", "data.json")
	v.AutomaticEnv()

	return &Config{
		Port:     v.GetString("PORT"),
		Env:      v.GetString("ENV"),
		DataFile: v.GetString("DATA_FILE"),
	}
}

package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	RedisUrl      string        `mapstructure:"REDIS_URL"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
	IsLocalCors   bool          `mapstructure:"LOCAL_CORS"`
	MaxSGFBytes   int64         `mapstructure:"MAX_SGF_BYTES"`
}

var defaults = map[string]any{
	"SERVER_PORT":    "8080",
	"REDIS_URL":      "",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,
	"CACHE_TTL":      "1h",
	"LOCAL_CORS":     false,
	"MAX_SGF_BYTES":  1 << 20,
}

// Setup reads cfgPath if it exists; environment variables override the
// file and defaults fill the rest. An empty REDIS_URL disables the cache.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigFile(cfgPath)
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	var pathErr *fs.PathError
	if err != nil && !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

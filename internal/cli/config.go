package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults read from ~/.config/hungarian/config.toml.
// Command-line flags always take precedence over config values; config
// values take precedence over built-in defaults.
//
// Example file:
//
//	max = 100
//	seed = 12345
//
//	[serve]
//	addr = ":9090"
//	cache = "redis"
//	redis_addr = "localhost:6379"
//	mongo_uri = "mongodb://localhost:27017"
type Config struct {
	// Max is the exclusive upper bound for random cell values.
	Max int64 `toml:"max"`

	// Seed seeds the random matrix generator. Zero means "pick one from
	// the current time", matching an unset flag.
	Seed int64 `toml:"seed"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig holds configuration for the serve command.
type ServeConfig struct {
	Addr      string `toml:"addr"`
	Cache     string `toml:"cache"` // file, redis or none
	RedisAddr string `toml:"redis_addr"`
	MongoURI  string `toml:"mongo_uri"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Max: defaultMax,
		Serve: ServeConfig{
			Addr:      ":8080",
			Cache:     "file",
			RedisAddr: "localhost:6379",
		},
	}
}

// loadConfig reads the config file at path over the built-in defaults.
// A missing file is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

// userConfig loads the config from the XDG location, falling back to the
// defaults (with a warning) when the path cannot be determined.
func (c *CLI) userConfig() Config {
	path, err := configPath()
	if err != nil {
		c.Logger.Warn("cannot determine config path", "err", err)
		return defaultConfig()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
	}
	return cfg
}

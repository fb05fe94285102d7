package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	configMu  sync.Mutex
	appConfig *Config
)

// Load reads configuration and stores it as the process config.
//
// If path is non-empty that file must exist and parse; otherwise the
// standard locations are searched and a missing file is not an error.
// CANOPY_* environment variables override file values, e.g.
// CANOPY_SERVER_URL, CANOPY_SERVER_USERNAME, CANOPY_LOGGING_DEBUG.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CANOPY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configMu.Lock()
	appConfig = &cfg
	configMu.Unlock()

	return &cfg, nil
}

// GetConfig returns the most recently loaded config, or the built-in
// defaults if Load has not run.
func GetConfig() *Config {
	configMu.Lock()
	defer configMu.Unlock()

	if appConfig == nil {
		return Default()
	}
	return appConfig
}

// DefaultPath returns the preferred location for a user config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "canopy", "config.yaml"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", DefaultServerURL)
	v.SetDefault("server.username", "")
	v.SetDefault("server.password", "")
	v.SetDefault("server.timeout", DefaultTimeout.String())
	v.SetDefault("server.requests_per_second", 0)
	v.SetDefault("logging.debug", false)
}

func searchDirs() []string {
	var dirs []string
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "canopy"))
	}
	dirs = append(dirs, "/etc/canopy")
	return dirs
}

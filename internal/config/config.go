package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-gzip-packer"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "GZIP_PACKER"

	// DefaultRoundTripSource is the fixed source compressed by the
	// round-trip smoke test when no override is configured.
	DefaultRoundTripSource = "source.txt"

	// DefaultRoundTripDestination is where the round-trip smoke test
	// decompresses the artifact it produced.
	DefaultRoundTripDestination = "source_decompressed.txt"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Round-trip smoke test settings
	RoundTrip struct {
		Source      string `mapstructure:"source"`
		Destination string `mapstructure:"destination"`
	} `mapstructure:"roundtrip"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Viper instance
	v *viper.Viper

	// Ensure thread safety
	mu sync.Mutex
)

// Initialize sets up the configuration system. It may be called again with
// an explicit config file (e.g. from a --config flag) to reload settings.
func Initialize(cfgFile string) error {
	mu.Lock()
	defer mu.Unlock()

	// Create a new viper instance
	v = viper.New()

	// Set default values
	setDefaults(v)

	// Load configuration from file if specified
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Set config name and type
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")

		// Add default search paths
		addSearchPaths(v)
	}

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read configuration file
	if readErr := v.ReadInConfig(); readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if the config file was found but couldn't be read
			return fmt.Errorf("error reading config file: %w", readErr)
		}
		// Config file not found, using defaults and environment variables
		ConfigLoaded = false
		ConfigFile = ""
	} else {
		ConfigLoaded = true
		ConfigFile = v.ConfigFileUsed()
	}

	// Unmarshal config into struct
	if err := v.Unmarshal(&Instance); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")

	// Round-trip defaults
	v.SetDefault("roundtrip.source", DefaultRoundTripSource)
	v.SetDefault("roundtrip.destination", DefaultRoundTripDestination)
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	// Add user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, AppName))
	}

	// Add system-wide config directory
	v.AddConfigPath("/etc/" + AppName)
}

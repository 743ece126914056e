package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tshetuinh/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeyDefaultScheme = "default_scheme"

	defaultScheme = "baxter"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DefaultScheme string `yaml:"default_scheme"`
	DataDir       string `yaml:"data_dir,omitempty"`
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDefaultScheme, defaultScheme)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml when the file does not exist. Idempotent.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	cfg := configFile{
		DefaultScheme: defaultScheme,
		DataDir:       flags.dataDir,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// resolvedDataDir applies the flag > config > env > default chain.
func resolvedDataDir() (string, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return "", err
	}
	return paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
}

// configuredScheme returns the default scheme name from config.yaml.
func configuredScheme() string {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return defaultScheme
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return defaultScheme
	}
	return v.GetString(cfgKeyDefaultScheme)
}

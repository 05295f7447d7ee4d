// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Valid values for DefaultSettings.Base.
const (
	BaseDec = "dec"
	BaseHex = "hex"
)

// Valid values for UIConfig.Verbosity.
const (
	VerbosityQuiet   = "quiet"
	VerbosityNormal  = "normal"
	VerbosityVerbose = "verbose"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Field string `json:"field"` // Field used when --field is omitted
	Base  string `json:"base"`  // Numeric output base: dec or hex
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// FieldProfile is a user-defined field configuration, addressable by name
// alongside the built-in fields.
type FieldProfile struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Primitive   int    `json:"primitive"`
	Size        int    `json:"size"`
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	profiles   map[string]*FieldProfile
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	cm := &ConfigManager{
		profiles: make(map[string]*FieldProfile),
	}

	// Determine config path
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	cm.configPath = configPath

	// Load or create default config
	if err := cm.LoadConfig(); err != nil {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	// Load field profiles
	if err := cm.LoadProfiles(); err != nil {
		// Profiles are optional, so we don't fail here
		cm.profiles = make(map[string]*FieldProfile)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Field: "qr-code-256",
			Base:  BaseDec,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: VerbosityNormal,
		},
	}
}

// Validate checks the configuration values against the supported sets.
func (c *Config) Validate() error {
	if c.Defaults.Field == "" {
		return fmt.Errorf("defaults.field cannot be empty")
	}

	if c.Defaults.Base != BaseDec && c.Defaults.Base != BaseHex {
		return fmt.Errorf("defaults.base must be %q or %q (got %q)", BaseDec, BaseHex, c.Defaults.Base)
	}

	switch c.UI.Verbosity {
	case VerbosityQuiet, VerbosityNormal, VerbosityVerbose:
	default:
		return fmt.Errorf("ui.verbosity must be quiet, normal, or verbose (got %q)", c.UI.Verbosity)
	}

	return nil
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	// Ensure config directory exists
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// ConfigPath returns the path of the configuration file backing this manager.
func (cm *ConfigManager) ConfigPath() string {
	return cm.configPath
}

// LoadProfiles loads saved field profiles
func (cm *ConfigManager) LoadProfiles() error {
	profilesPath := cm.profilesPath()

	data, err := os.ReadFile(profilesPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Profiles file doesn't exist yet
			return nil
		}
		return err
	}

	profiles := make(map[string]*FieldProfile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse field profiles: %w", err)
	}

	cm.profiles = profiles
	return nil
}

// SaveProfiles saves field profiles to disk
func (cm *ConfigManager) SaveProfiles() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal field profiles: %w", err)
	}

	if err := os.WriteFile(cm.profilesPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write field profiles: %w", err)
	}

	return nil
}

// AddProfile adds a new field profile
func (cm *ConfigManager) AddProfile(profile *FieldProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("field profile name cannot be empty")
	}

	cm.profiles[profile.Name] = profile
	return cm.SaveProfiles()
}

// GetProfile retrieves a field profile by name
func (cm *ConfigManager) GetProfile(name string) (*FieldProfile, error) {
	profile, exists := cm.profiles[name]
	if !exists {
		return nil, fmt.Errorf("field profile '%s' not found", name)
	}
	return profile, nil
}

// ListProfiles returns all field profiles, sorted by name
func (cm *ConfigManager) ListProfiles() []*FieldProfile {
	profiles := make([]*FieldProfile, 0, len(cm.profiles))
	for _, profile := range cm.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles
}

// DeleteProfile removes a field profile
func (cm *ConfigManager) DeleteProfile(name string) error {
	if _, exists := cm.profiles[name]; !exists {
		return fmt.Errorf("field profile '%s' not found", name)
	}

	delete(cm.profiles, name)
	return cm.SaveProfiles()
}

func (cm *ConfigManager) profilesPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "fields.json")
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("GALOIS_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "galois", "config.json"), nil
	}

	// Default to ~/.config/galois/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "galois", "config.json"), nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "complexslider/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Physics    PhysicsConfig    `toml:"physics"`
	Sliders    []SliderConfig   `toml:"sliders"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme           string `toml:"theme"`            // Color theme name (e.g., dracula, nord). Empty uses terminal colors.
	ASCIIOnly       bool   `toml:"ascii_only"`       // Use ASCII glyphs instead of box drawing and circles
	BorderStyle     string `toml:"border_style"`     // Container border: rounded, normal, thick, double, hidden, block, ascii
	CellWidth       int    `toml:"cell_width"`       // Units per terminal column (default: 8)
	CellHeight      int    `toml:"cell_height"`      // Units per terminal row (default: 16)
	ShowHelp        *bool  `toml:"show_help"`        // Show the key hint footer (default: true)
	SignedImaginary bool   `toml:"signed_imaginary"` // Print "a - bi %" instead of "a + -bi %"
}

// PhysicsConfig tunes gravity
type PhysicsConfig struct {
	TickIntervalMS int `toml:"tick_interval_ms"` // Delay between gravity ticks (default: 20)
	GravityStep    int `toml:"gravity_step"`     // Units fallen per tick (default: 5)
	SnapTolerance  int `toml:"snap_tolerance"`   // Snap-to-bar window half-width (default: 5)
}

// SliderConfig declares one slider container. HandleTop and HandleLeft
// default to centring the handle in the container.
type SliderConfig struct {
	Label      string `toml:"label"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	HandleSize int    `toml:"handle_size"`
	HandleTop  int    `toml:"handle_top,omitempty"`
	HandleLeft int    `toml:"handle_left,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	showHelp := true
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
			CellWidth:   DefaultCellWidth,
			CellHeight:  DefaultCellHeight,
			ShowHelp:    &showHelp,
		},
		Physics: PhysicsConfig{
			TickIntervalMS: int(GravityTickInterval.Milliseconds()),
			GravityStep:    GravityStep,
			SnapTolerance:  SnapTolerance,
		},
		Sliders: []SliderConfig{
			{Label: "z₁", Width: DefaultSliderWidth, Height: DefaultSliderHeight, HandleSize: DefaultHandleSize},
			{Label: "z₂", Width: DefaultSliderWidth, Height: DefaultSliderHeight, HandleSize: DefaultHandleSize},
		},
	}
}

// LoadUserConfig loads the user configuration from the XDG config directory,
// creating a default file when none exists.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads, fills and validates a config file at an explicit path.
func LoadConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingPhysics(&cfg, defaultCfg)
	fillMissingSliders(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, warn := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", warn.Field, warn.Key, warn.Message)
	}

	return &cfg, nil
}

// createDefaultConfig writes a commented default config file and returns it.
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	cfg := DefaultConfig()
	if err := writeConfig(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResetConfig overwrites the config file with defaults and returns its path.
func ResetConfig() (string, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return configPath, writeConfig(configPath, DefaultConfig())
}

func writeConfig(configPath string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# complexslider configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("#\n")
	sb.WriteString("# All geometry is in units. One terminal cell spans cell_width x cell_height units.\n")
	sb.WriteString("#\n")
	sb.WriteString("# [appearance]\n")
	sb.WriteString("#   theme: bubbletint theme id (empty for terminal colors)\n")
	sb.WriteString("#   border_style: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("#\n")
	sb.WriteString("# [physics]\n")
	sb.WriteString("#   tick_interval_ms: delay between gravity ticks (default 20)\n")
	sb.WriteString("#   gravity_step: units fallen per tick (default 5)\n")
	sb.WriteString("#   snap_tolerance: snap-to-bar window (default 5)\n")
	sb.WriteString("#\n")
	sb.WriteString("# [[sliders]]\n")
	sb.WriteString("#   width/height: container size; handle_size: handle height\n")
	sb.WriteString("#   handle_top/handle_left: initial handle offset (default: centre)\n\n")
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.CellWidth <= 0 {
		cfg.Appearance.CellWidth = defaultCfg.Appearance.CellWidth
	}
	if cfg.Appearance.CellHeight <= 0 {
		cfg.Appearance.CellHeight = defaultCfg.Appearance.CellHeight
	}
	if cfg.Appearance.ShowHelp == nil {
		cfg.Appearance.ShowHelp = defaultCfg.Appearance.ShowHelp
	}
}

func fillMissingPhysics(cfg, defaultCfg *UserConfig) {
	if cfg.Physics.TickIntervalMS <= 0 {
		cfg.Physics.TickIntervalMS = defaultCfg.Physics.TickIntervalMS
	}
	if cfg.Physics.GravityStep <= 0 {
		cfg.Physics.GravityStep = defaultCfg.Physics.GravityStep
	}
	if cfg.Physics.SnapTolerance <= 0 {
		cfg.Physics.SnapTolerance = defaultCfg.Physics.SnapTolerance
	}
}

// fillMissingSliders supplies the default sliders when none are declared and
// fills zero-valued sizes on declared ones.
func fillMissingSliders(cfg, defaultCfg *UserConfig) {
	if len(cfg.Sliders) == 0 {
		cfg.Sliders = defaultCfg.Sliders
		return
	}
	for i := range cfg.Sliders {
		s := &cfg.Sliders[i]
		if s.Width <= 0 {
			s.Width = DefaultSliderWidth
		}
		if s.Height <= 0 {
			s.Height = DefaultSliderHeight
		}
		if s.HandleSize <= 0 {
			s.HandleSize = DefaultHandleSize
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}

package config

import (
	"log"
	"time"

	"github.com/complexslider/complexslider/internal/slider"
	"github.com/complexslider/complexslider/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII glyphs
	ASCIIOnly bool

	// BorderStyle overrides the container border style
	BorderStyle string

	// CellWidth overrides units per column (0 means use config)
	CellWidth int

	// CellHeight overrides units per row (0 means use config)
	CellHeight int

	// NoHelp hides the key hint footer
	NoHelp bool

	// SignedImaginary prints "a - bi %"
	SignedImaginary bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly)

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Cell size - CLI flag takes precedence
	if overrides.CellWidth > 0 {
		CellWidth = overrides.CellWidth
	} else if userConfig != nil && userConfig.Appearance.CellWidth > 0 {
		CellWidth = userConfig.Appearance.CellWidth
	}
	if overrides.CellHeight > 0 {
		CellHeight = overrides.CellHeight
	} else if userConfig != nil && userConfig.Appearance.CellHeight > 0 {
		CellHeight = userConfig.Appearance.CellHeight
	}

	// Help footer - hidden by flag or config
	ShowHelp = !overrides.NoHelp
	if ShowHelp && userConfig != nil && userConfig.Appearance.ShowHelp != nil {
		ShowHelp = *userConfig.Appearance.ShowHelp
	}

	SignedImaginary = overrides.SignedImaginary || (userConfig != nil && userConfig.Appearance.SignedImaginary)

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}

// PhysicsParams converts the physics section into registry parameters.
func (c *UserConfig) PhysicsParams() slider.Physics {
	return slider.Physics{
		Interval:      time.Duration(c.Physics.TickIntervalMS) * time.Millisecond,
		Step:          c.Physics.GravityStep,
		SnapTolerance: c.Physics.SnapTolerance,
	}
}

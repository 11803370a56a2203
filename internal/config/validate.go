package config

import (
	"fmt"
	"slices"

	"github.com/complexslider/complexslider/internal/slider"
)

// ValidationError describes a single problem in the config file.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects errors (fatal) and warnings (logged).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors reports whether any fatal problem was found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any non-fatal problem was found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationError{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks a filled config for values the slider cannot honour.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if !slices.Contains(ValidBorderStyles, cfg.Appearance.BorderStyle) {
		result.addWarning("appearance", "border_style", "unknown style %q, using rounded", cfg.Appearance.BorderStyle)
	}

	if cfg.Physics.TickIntervalMS < 5 {
		result.addWarning("physics", "tick_interval_ms", "%dms is very fast and may flood the terminal", cfg.Physics.TickIntervalMS)
	}
	if cfg.Physics.SnapTolerance > cfg.Physics.GravityStep*4 {
		result.addWarning("physics", "snap_tolerance", "tolerance %d is much wider than the gravity step %d",
			cfg.Physics.SnapTolerance, cfg.Physics.GravityStep)
	}

	for i, s := range cfg.Sliders {
		field := fmt.Sprintf("sliders.%d", i)
		if s.HandleSize >= s.Height {
			result.addError(field, "handle_size", "handle (%d) must be shorter than the container (%d)", s.HandleSize, s.Height)
			continue
		}
		bounds := slider.DeriveBounds(SliderInitial(s))
		if err := bounds.Validate(); err != nil {
			result.addError(field, "geometry", "%v", err)
		}
		if bounds.BarMinX == bounds.BarMaxX {
			result.addError(field, "width", "bar has zero length")
		}
	}

	return result
}

// SliderInitial returns the handle's initial placement for a declared slider.
func SliderInitial(s SliderConfig) slider.Initial {
	top := s.HandleTop
	if top == 0 {
		top = s.Height / 2
	}
	left := s.HandleLeft
	if left == 0 {
		left = s.Width / 2
	}
	return slider.Initial{Top: top, Left: left, HandleHeight: s.HandleSize}
}

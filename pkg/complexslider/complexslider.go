// Package complexslider provides complex-valued sliders that can be embedded
// in other Bubble Tea applications or driven headlessly.
//
// A slider's handle rests on a horizontal bar, where it reads as a real
// percentage. Dragged off the bar it reads as a complex number "a + bi %",
// and once released gravity pulls it back down until it lands on the bar or
// the floor of its box.
//
// # Basic Usage
//
//	model := complexslider.New()
//	p := tea.NewProgram(model, complexslider.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model := complexslider.New(
//		complexslider.WithTheme("dracula"),
//		complexslider.WithSliders(
//			complexslider.Slider{Label: "gain", Width: 480, Height: 160, HandleSize: 16},
//		),
//		complexslider.WithSignedImaginary(true),
//	)
//
// # Headless
//
// The registry can run without a UI. Pointer events are fed through a channel
// and the gravity tick runs on the calling goroutine:
//
//	reg := complexslider.NewRegistry()
//	w := complexslider.NewWidget("z", complexslider.Initial{Top: 64, Left: 200, HandleHeight: 16})
//	reg.Register(w)
//	go reg.Run(ctx, events)
package complexslider

import (
	tea "charm.land/bubbletea/v2"
	"github.com/complexslider/complexslider/internal/app"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/input"
	"github.com/complexslider/complexslider/internal/server"
	"github.com/complexslider/complexslider/internal/slider"
	"github.com/complexslider/complexslider/internal/theme"
)

// Model is the slider application model that implements tea.Model.
type Model = app.App

// Slider declares one slider container in units.
type Slider = config.SliderConfig

// Physics tunes the gravity tick.
type Physics = slider.Physics

// Registry owns a set of widgets and runs gravity over them.
type Registry = slider.Registry

// Widget is a single slider handle with its bounds.
type Widget = slider.Widget

// Initial is the handle's initial offset within its container.
type Initial = slider.Initial

// Point and Label are the in-memory handle and text sink NewWidget installs.
type (
	Point = slider.Point
	Label = slider.Label
)

// Pointer events accepted by Registry.Run.
type (
	Event            = slider.Event
	PointerDownEvent = slider.PointerDownEvent
	PointerMoveEvent = slider.PointerMoveEvent
	PointerUpEvent   = slider.PointerUpEvent
)

// Options configures a slider app.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII glyphs for the handle and bar.
	ASCIIOnly bool

	// BorderStyle sets the container border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// CellWidth and CellHeight are the units one terminal cell spans.
	CellWidth  int
	CellHeight int

	// Sliders declares the containers. Defaults to two sliders.
	Sliders []Slider

	// Physics overrides the gravity parameters.
	Physics *Physics

	// SignedImaginary prints "a - bi %" instead of "a + -bi %".
	SignedImaginary bool

	// HideHelp hides the key hint footer.
	HideHelp bool

	// Width and Height are the initial size (set automatically if 0).
	Width  int
	Height int

	// UserConfig is a custom user configuration. If nil, defaults are used.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the app.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only glyphs.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the container border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithCellSize sets how many units one terminal cell spans.
func WithCellSize(width, height int) Option {
	return func(o *Options) {
		o.CellWidth = max(width, 1)
		o.CellHeight = max(height, 1)
	}
}

// WithSliders replaces the default sliders.
func WithSliders(sliders ...Slider) Option {
	return func(o *Options) {
		o.Sliders = sliders
	}
}

// WithPhysics sets the gravity parameters.
func WithPhysics(p Physics) Option {
	return func(o *Options) {
		o.Physics = &p
	}
}

// WithSignedImaginary prints negative imaginary parts as "a - bi %".
func WithSignedImaginary(enabled bool) Option {
	return func(o *Options) {
		o.SignedImaginary = enabled
	}
}

// WithHelp shows or hides the key hint footer.
func WithHelp(show bool) Option {
	return func(o *Options) {
		o.HideHelp = !show
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// New creates a new slider app with the given options.
func New(opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	userConfig := options.UserConfig
	if userConfig == nil {
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:       options.ASCIIOnly,
		BorderStyle:     options.BorderStyle,
		CellWidth:       options.CellWidth,
		CellHeight:      options.CellHeight,
		NoHelp:          options.HideHelp,
		SignedImaginary: options.SignedImaginary,
	}, userConfig)

	if options.Theme != "" {
		_ = theme.Initialize(options.Theme)
	}

	appOpts := app.OptionsFromConfig(userConfig)
	if len(options.Sliders) > 0 {
		appOpts.Sliders = options.Sliders
	}
	if options.Physics != nil {
		appOpts.Physics = *options.Physics
	}
	appOpts.Width = options.Width
	appOpts.Height = options.Height
	return app.New(appOpts)
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the app:
//
//	p := tea.NewProgram(complexslider.New(), complexslider.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return server.ProgramOptions()
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse motion
// while no handle is being dragged.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return server.FilterMouseMotion(model, msg)
}

// NewRegistry creates an empty headless registry with default physics.
func NewRegistry() *Registry {
	return slider.NewRegistry()
}

// NewWidget creates a widget with in-memory handle and text sinks, placed at
// its initial offset.
func NewWidget(label string, initial Initial) *Widget {
	point := &slider.Point{X: initial.Left, Y: initial.Top}
	return slider.NewWidget(label, slider.DeriveBounds(initial), point, &slider.Label{})
}

// DisplayValue returns the value text for a handle at (x, y) in a container
// whose handle started at initial.
func DisplayValue(initial Initial, x, y int) string {
	return slider.DisplayValue(slider.DeriveBounds(initial), x, y)
}

// Config re-exports the config package for customization.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}

// Package main implements complexslider, a terminal slider whose handle reads
// as a real percentage on its bar and as a complex number anywhere above or
// below it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode       bool
	asciiOnly       bool
	themeName       string
	borderStyle     string
	cellWidth       int
	cellHeight      int
	noHelp          bool
	signedImaginary bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complexslider",
		Short: "Complex-valued sliders in the terminal",
		Long: `complexslider - complex-valued sliders in the terminal

Each slider has a bar and a handle. On the bar the handle reads as a real
percentage. Drag it off the bar and it reads as a complex number; let go and
gravity pulls it back down until it lands on the bar or the floor of its box.`,
		Example: `  # Run with the sliders from your config file
  complexslider

  # Run with a specific theme
  complexslider --theme dracula

  # Print "a - bi %" instead of "a + -bi %"
  complexslider --signed-imaginary

  # Serve over SSH
  complexslider ssh --port 2222

  # Serve in the browser
  complexslider web --port 7681

  # Read the value at a position without a UI
  complexslider value 200 40`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII glyphs for the handle and bar")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Container border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().IntVar(&cellWidth, "cell-width", 0, "Units per terminal column (default: from config or 8)")
	rootCmd.PersistentFlags().IntVar(&cellHeight, "cell-height", 0, "Units per terminal row (default: from config or 16)")
	rootCmd.PersistentFlags().BoolVar(&noHelp, "no-help", false, "Hide the key hint footer")
	rootCmd.PersistentFlags().BoolVar(&signedImaginary, "signed-imaginary", false, `Print negative imaginary parts as "a - bi %"`)

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve complexslider over SSH",
		Long: `Serve complexslider over SSH

Every connection gets its own sliders and its own gravity loop. The server
generates a host key automatically if none is specified.`,
		Example: `  # Start SSH server on default port
  complexslider ssh

  # Start on custom port
  complexslider ssh --port 2223

  # Specify custom host key
  complexslider ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	var webPort, webHost string

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve complexslider in the browser",
		Long: `Serve complexslider as a web terminal

Open the printed address in a browser. Every tab gets its own sliders.`,
		Example: `  complexslider web
  complexslider web --host 0.0.0.0 --port 8080`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer(webHost, webPort)
		},
	}

	webCmd.Flags().StringVar(&webPort, "port", "7681", "Web server port")
	webCmd.Flags().StringVar(&webHost, "host", "localhost", "Web server host")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage complexslider configuration",
		Long:  `Manage the complexslider configuration file`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the complexslider configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the complexslider configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")

	configValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long:  `Load the configuration file and report every error and warning`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return validateConfigFile()
		},
	}

	configCmd.AddCommand(configPathCmd, configResetCmd, configValidateCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List and preview color themes",
	}

	themesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available themes",
		Example: `  # Pick a theme with fzf
  complexslider --theme $(complexslider themes list | fzf --preview 'complexslider themes preview {}')`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes()
		},
	}

	themesPreviewCmd := &cobra.Command{
		Use:   "preview <name>",
		Short: "Preview a theme's colors",
		Long:  `Print a theme's swatches, downsampled to what this terminal supports`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return previewThemeColors(args[0])
		},
	}

	themesCmd.AddCommand(themesListCmd, themesPreviewCmd)

	keysCmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"keybinds", "kb"},
		Short:   "List all keybindings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	var valueOpts valueOptions
	valueCmd := &cobra.Command{
		Use:   "value <x> <y>",
		Short: "Print the value of a handle position",
		Long: `Print the value a handle at (x, y) would display, in units

The container geometry comes from the flags. Handle offsets default to the
centre of the container, the same way the interactive sliders are placed.`,
		Example: `  # On the bar of a default 400x128 slider
  complexslider value 200 64

  # Lifted 24 units above the bar
  complexslider value 200 40

  # Show the derived bounds too
  complexslider value 300 90 --width 480 --height 180 --bounds`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return printValue(args, valueOpts)
		},
	}
	valueCmd.Flags().IntVar(&valueOpts.width, "width", 400, "Container width in units")
	valueCmd.Flags().IntVar(&valueOpts.height, "height", 128, "Container height in units")
	valueCmd.Flags().IntVar(&valueOpts.handleSize, "handle-size", 16, "Handle height in units")
	valueCmd.Flags().IntVar(&valueOpts.top, "top", 0, "Initial handle top offset (default: height/2)")
	valueCmd.Flags().IntVar(&valueOpts.left, "left", 0, "Initial handle left offset (default: width/2)")
	valueCmd.Flags().BoolVar(&valueOpts.bounds, "bounds", false, "Also print the derived bounds")

	rootCmd.AddCommand(sshCmd, webCmd, configCmd, themesCmd, keysCmd, valueCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

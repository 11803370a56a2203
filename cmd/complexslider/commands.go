package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/complexslider/complexslider/internal/config"
	"github.com/complexslider/complexslider/internal/slider"
	"github.com/complexslider/complexslider/internal/theme"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func resetConfigToDefaults(skipConfirm bool) error {
	if !skipConfirm {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		fmt.Printf("This will overwrite %s with the defaults. Continue? [y/N] ", path)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	path, err := config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

func validateConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("No config file at %s, defaults are in use.\n", path)
		return nil
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s is valid (%d slider(s)).\n", path, len(cfg.Sliders))
	return nil
}

func listThemes() error {
	for _, id := range theme.IDs() {
		fmt.Println(id)
	}
	return nil
}

// previewThemeColors prints each swatch of a theme through a colorprofile
// writer, so terminals without true color get the nearest colors.
func previewThemeColors(name string) error {
	t, ok := theme.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown theme %q (see 'complexslider themes list')", name)
	}

	w := colorprofile.NewWriter(os.Stdout, os.Environ())
	title := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.CLITableDim())

	_, _ = fmt.Fprintf(w, "%s %s\n\n", title.Render(t.DisplayName), dim.Render("("+w.Profile.String()+")"))
	for _, sw := range theme.Swatches(t) {
		block := lipgloss.NewStyle().Background(sw.Color).Render("      ")
		_, _ = fmt.Fprintf(w, "%s  %-14s %s\n", block, sw.Name, dim.Render(theme.ColorToString(sw.Color)))
	}
	return nil
}

func listKeybindings() error {
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader())
	key := lipgloss.NewStyle().Foreground(theme.CLITableKey())

	fmt.Printf("%s  %s\n", header.Render(fmt.Sprintf("%-12s", "KEY")), header.Render("ACTION"))
	for _, kb := range config.Keybindings {
		fmt.Printf("%s  %s\n", key.Render(fmt.Sprintf("%-12s", kb.Key)), kb.Description)
	}
	return nil
}

type valueOptions struct {
	width, height, handleSize int
	top, left                 int
	bounds                    bool
}

// formatValue derives a container's bounds from opts and returns the text a
// handle at (x, y) would display.
func formatValue(x, y int, opts valueOptions, signed bool) (string, slider.Bounds) {
	initial := config.SliderInitial(config.SliderConfig{
		Width:      opts.width,
		Height:     opts.height,
		HandleSize: opts.handleSize,
		HandleTop:  opts.top,
		HandleLeft: opts.left,
	})
	b := slider.DeriveBounds(initial)
	if signed {
		return slider.SignedDisplayValue(b, x, y), b
	}
	return slider.DisplayValue(b, x, y), b
}

func printValue(args []string, opts valueOptions) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[1], err)
	}

	value, b := formatValue(x, y, opts, signedImaginary)
	if opts.bounds {
		fmt.Printf("bar    y=%d x=[%d, %d]\n", b.BarY, b.BarMinX, b.BarMaxX)
		fmt.Printf("box    x=[%d, %d] y=[%d, %d]\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
		if !b.Contains(x, y) {
			fmt.Println("note   position is outside the box")
		}
	}
	fmt.Println(value)
	return nil
}

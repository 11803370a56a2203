package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the custom themes directory, creating it if needed.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("complexslider/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in themesDir with bubbletint
// and returns the IDs it loaded. Unreadable files are skipped with a warning.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		t, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile parses one theme file. The ID falls back to the
// lowercased file name and missing colors are filled in.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path is from user's config directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults fills nil colors. Base colors get xterm values; derived
// colors copy their base once it is set.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		field **tint.Color
		hex   string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, c := range base {
		if *c.field == nil {
			*c.field = tint.FromHex(c.hex)
		}
	}

	derived := []struct {
		field **tint.Color
		from  *tint.Color
	}{
		{&t.Cursor, t.Fg},
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, c := range derived {
		if *c.field == nil {
			*c.field = copyColor(c.from)
		}
	}
}

func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}

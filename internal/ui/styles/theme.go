package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name        string
	Description string

	// Core colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color

	// UI element colors
	Border        lipgloss.Color
	Selection     lipgloss.Color
	SelectionText lipgloss.Color
	Chip          lipgloss.Color
	ChipText      lipgloss.Color
}

// Built-in themes
var (
	// DarkTheme is the default dark theme
	DarkTheme = Theme{
		Name:          "dark",
		Description:   "Dark theme (default)",
		Primary:       lipgloss.Color("#7C3AED"),
		Secondary:     lipgloss.Color("#06B6D4"),
		Background:    lipgloss.Color("#1F2937"),
		Foreground:    lipgloss.Color("#F9FAFB"),
		Success:       lipgloss.Color("#10B981"),
		Warning:       lipgloss.Color("#F59E0B"),
		Error:         lipgloss.Color("#EF4444"),
		Muted:         lipgloss.Color("#6B7280"),
		Border:        lipgloss.Color("#374151"),
		Selection:     lipgloss.Color("#7C3AED"),
		SelectionText: lipgloss.Color("#F9FAFB"),
		Chip:          lipgloss.Color("#374151"),
		ChipText:      lipgloss.Color("#F9FAFB"),
	}

	// LightTheme is a light color scheme
	LightTheme = Theme{
		Name:          "light",
		Description:   "Light theme",
		Primary:       lipgloss.Color("#7C3AED"),
		Secondary:     lipgloss.Color("#0891B2"),
		Background:    lipgloss.Color("#FFFFFF"),
		Foreground:    lipgloss.Color("#1F2937"),
		Success:       lipgloss.Color("#059669"),
		Warning:       lipgloss.Color("#D97706"),
		Error:         lipgloss.Color("#DC2626"),
		Muted:         lipgloss.Color("#9CA3AF"),
		Border:        lipgloss.Color("#E5E7EB"),
		Selection:     lipgloss.Color("#7C3AED"),
		SelectionText: lipgloss.Color("#FFFFFF"),
		Chip:          lipgloss.Color("#E5E7EB"),
		ChipText:      lipgloss.Color("#1F2937"),
	}

	// LagoonTheme uses the cyan and coral palette of the mobile tracker
	LagoonTheme = Theme{
		Name:          "lagoon",
		Description:   "Cyan and coral",
		Primary:       lipgloss.Color("#FF5722"),
		Secondary:     lipgloss.Color("#03FCA5"),
		Background:    lipgloss.Color("#0BBED8"),
		Foreground:    lipgloss.Color("#000000"),
		Success:       lipgloss.Color("#03FCA5"),
		Warning:       lipgloss.Color("#FFB90F"),
		Error:         lipgloss.Color("#FF0000"),
		Muted:         lipgloss.Color("#FFFFFF"),
		Border:        lipgloss.Color("#FFFFFF"),
		Selection:     lipgloss.Color("#007AFF"),
		SelectionText: lipgloss.Color("#FFFFFF"),
		Chip:          lipgloss.Color("#C90076"),
		ChipText:      lipgloss.Color("#FFFFFF"),
	}

	// SolarizedTheme is based on the Solarized color scheme
	SolarizedTheme = Theme{
		Name:          "solarized",
		Description:   "Solarized dark theme",
		Primary:       lipgloss.Color("#268BD2"),
		Secondary:     lipgloss.Color("#2AA198"),
		Background:    lipgloss.Color("#002B36"),
		Foreground:    lipgloss.Color("#839496"),
		Success:       lipgloss.Color("#859900"),
		Warning:       lipgloss.Color("#B58900"),
		Error:         lipgloss.Color("#DC322F"),
		Muted:         lipgloss.Color("#586E75"),
		Border:        lipgloss.Color("#073642"),
		Selection:     lipgloss.Color("#268BD2"),
		SelectionText: lipgloss.Color("#FDF6E3"),
		Chip:          lipgloss.Color("#073642"),
		ChipText:      lipgloss.Color("#93A1A1"),
	}

	// NordTheme is based on the Nord color palette
	NordTheme = Theme{
		Name:          "nord",
		Description:   "Nord theme",
		Primary:       lipgloss.Color("#88C0D0"),
		Secondary:     lipgloss.Color("#81A1C1"),
		Background:    lipgloss.Color("#2E3440"),
		Foreground:    lipgloss.Color("#ECEFF4"),
		Success:       lipgloss.Color("#A3BE8C"),
		Warning:       lipgloss.Color("#EBCB8B"),
		Error:         lipgloss.Color("#BF616A"),
		Muted:         lipgloss.Color("#4C566A"),
		Border:        lipgloss.Color("#3B4252"),
		Selection:     lipgloss.Color("#88C0D0"),
		SelectionText: lipgloss.Color("#2E3440"),
		Chip:          lipgloss.Color("#3B4252"),
		ChipText:      lipgloss.Color("#ECEFF4"),
	}

	// GruvboxTheme is based on the Gruvbox color scheme
	GruvboxTheme = Theme{
		Name:          "gruvbox",
		Description:   "Gruvbox dark theme",
		Primary:       lipgloss.Color("#D79921"),
		Secondary:     lipgloss.Color("#458588"),
		Background:    lipgloss.Color("#282828"),
		Foreground:    lipgloss.Color("#EBDBB2"),
		Success:       lipgloss.Color("#98971A"),
		Warning:       lipgloss.Color("#D79921"),
		Error:         lipgloss.Color("#CC241D"),
		Muted:         lipgloss.Color("#928374"),
		Border:        lipgloss.Color("#3C3836"),
		Selection:     lipgloss.Color("#D79921"),
		SelectionText: lipgloss.Color("#282828"),
		Chip:          lipgloss.Color("#3C3836"),
		ChipText:      lipgloss.Color("#EBDBB2"),
	}

	// BuiltinThemes is a list of all available built-in themes
	BuiltinThemes = []Theme{
		DarkTheme,
		LightTheme,
		LagoonTheme,
		SolarizedTheme,
		NordTheme,
		GruvboxTheme,
	}

	// currentTheme holds the active theme
	currentTheme = DarkTheme
)

// LookupTheme returns the named theme
func LookupTheme(name string) (Theme, error) {
	for _, t := range BuiltinThemes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return DarkTheme, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
}

// ThemeNames returns a list of all available theme names
func ThemeNames() []string {
	names := make([]string, len(BuiltinThemes))
	for i, t := range BuiltinThemes {
		names[i] = t.Name
	}
	return names
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetCurrentTheme activates the named theme. Unknown names fall back to
// the dark theme and report an error.
func SetCurrentTheme(name string) error {
	theme, err := LookupTheme(name)
	currentTheme = theme
	ApplyTheme(theme)
	return err
}

// NextTheme cycles to the next theme and returns its name
func NextTheme() string {
	for i, t := range BuiltinThemes {
		if t.Name == currentTheme.Name {
			next := BuiltinThemes[(i+1)%len(BuiltinThemes)]
			_ = SetCurrentTheme(next.Name)
			return next.Name
		}
	}
	_ = SetCurrentTheme(DarkTheme.Name)
	return DarkTheme.Name
}

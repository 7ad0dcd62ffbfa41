package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the timer UI. The accent color doubles
// as the progress-ring fill, matching how the browser front end tints its
// SVG ring.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string // ring track and darkened clock text
	Faint   string
	Accent  string // filled ring segments and the cycle bar
	Success string
	Warning string
	Danger  string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		RingFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		RingTrack: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		ClockDark: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains the pre-built lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	RingFilled lipgloss.Style
	RingTrack  lipgloss.Style
	Clock      lipgloss.Style
	ClockDark  lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, defaulting to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Faint:      "#39506d", // bg4
		Accent:     "#719cd6", // blue
		Success:    "#81b29a", // green
		Warning:    "#dbc074", // yellow
		Danger:     "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Text:       "#DCD7BA", // fujiWhite
		Muted:      "#C8C093", // oldWhite
		Faint:      "#54546D", // sumiInk6
		Accent:     "#7E9CD8", // crystalBlue
		Success:    "#98BB6C", // springGreen
		Warning:    "#E6C384", // carpYellow
		Danger:     "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:       "Slate",
		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Text:       "#f1f5f9", // slate-100
		Muted:      "#94a3b8", // slate-400
		Faint:      "#334155", // slate-700
		Accent:     "#38bdf8", // sky-400
		Success:    "#22c55e", // green-500
		Warning:    "#f59e0b", // amber-500
		Danger:     "#ef4444", // red-500
	}
}

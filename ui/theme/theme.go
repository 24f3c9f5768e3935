package theme

// Light and dark palettes for the labeler window and the ttk styles used by the
// status bar. Box outline colors come from the class table, not from here.

import (
	tk "modernc.org/tk9.0"
)

// Palette holds the resolved colors of one mode.
type Palette struct {
	Window  string // root window and canvas surround
	Bar     string // status bar background
	Text    string
	Muted   string
	Badge   string // drawing state badge background
	BadgeFg string
	Error   string
}

var (
	light = Palette{
		Window:  "#f7f9fb",
		Bar:     "#ffffff",
		Text:    "#1e293b",
		Muted:   "#64748b",
		Badge:   "#10b981",
		BadgeFg: "white",
		Error:   "#dc2626",
	}
	dark = Palette{
		Window:  "#0f172a",
		Bar:     "#1e293b",
		Text:    "#f1f5f9",
		Muted:   "#94a3b8",
		Badge:   "#047857",
		BadgeFg: "#f0fdf4",
		Error:   "#ef4444",
	}
)

// Style names for ttk labels.
const (
	StyleStatusLabel = "status.TLabel"
	StyleStateLabel  = "state.TLabel"
	StyleErrorLabel  = "error.TLabel"
)

var darkMode bool

// Current returns the palette of the active mode.
func Current() Palette {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles activates the base theme and configures the label styles.
func InitStyles() { apply(Current(), darkMode) }

// ToggleDark flips between light and dark mode and returns the new mode.
func ToggleDark() bool {
	darkMode = !darkMode
	apply(Current(), darkMode)
	return darkMode
}

func apply(p Palette, dark bool) {
	base := "azure light"
	if dark {
		base = "azure dark"
	}
	_ = tk.ActivateTheme(base)
	tk.App.Configure(tk.Background(p.Window))

	tk.StyleConfigure(StyleStatusLabel, tk.Foreground(p.Text), tk.Background(p.Bar), tk.Padding("4p 2p"))
	tk.StyleConfigure(StyleStateLabel,
		tk.Foreground(p.BadgeFg),
		tk.Background(p.Badge),
		tk.Padding("4p 2p"),
		tk.Borderwidth(1),
		tk.Relief("groove"),
	)
	tk.StyleConfigure(StyleErrorLabel, tk.Foreground(p.Error), tk.Background(p.Bar), tk.Padding("4p 2p"))
}

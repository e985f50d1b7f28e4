// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("SMARTSALES_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// iTerm2, Alacritty, WezTerm, Kitty typically ship with Nerd Fonts
	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	// Default to Unicode fallback for maximum compatibility
	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	nerd     string
	fallback string
}

// String returns the appropriate variant for the current terminal
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.nerd
	}
	return i.fallback
}

var (
	App       = Icon{nerd: "", fallback: "◆"} // shopping cart
	User      = Icon{nerd: "", fallback: "@"}
	Lock      = Icon{nerd: "", fallback: "⚿"}
	Users     = Icon{nerd: "\uf0c0", fallback: "#"}
	Orders    = Icon{nerd: "\uf07a", fallback: "◇"}
	Products  = Icon{nerd: "", fallback: "▣"}
	Inventory = Icon{nerd: "", fallback: "≡"}
	Reports   = Icon{nerd: "", fallback: "▤"}
	AuditLog  = Icon{nerd: "", fallback: "✎"}
	Refresh   = Icon{nerd: "", fallback: "↻"}
	Back      = Icon{nerd: "", fallback: "←"}
	Quit      = Icon{nerd: "", fallback: "✕"}
	CheckOK   = Icon{nerd: "", fallback: "✓"}
	Warning   = Icon{nerd: "", fallback: "!"}
	Critical  = Icon{nerd: "", fallback: "✗"}
)

// Package theme holds the process-wide light/dark state and re-applies it to
// every open surface.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme is one of a closed set of style variants.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// Toggled returns the other variant.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "light" or "dark", case-insensitively.
func Parse(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", name)
	}
}

// Style is the colour pair a theme assigns to an element.
type Style struct {
	Background color.NRGBA
	Foreground color.NRGBA
}

var rules = map[Theme]Style{
	Light: {
		Background: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		Foreground: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	},
	Dark: {
		Background: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	},
}

// StyleFor returns the rule-table entry for t. Unknown values fall back to
// the light entry.
func StyleFor(t Theme) Style {
	if s, ok := rules[t]; ok {
		return s
	}
	return rules[Light]
}

// Package theme provides the page color theme and its accent color.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownTheme is returned by Parse for names other than dark and light.
var ErrUnknownTheme = errors.New("unknown theme")

// Mode is the active theme.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Parse converts a configured theme name into a Mode.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Palette colors for each mode.
const (
	DarkAccent  = "#00f3ff"
	LightAccent = "#0066cc"
	Purple      = "#bc13fe"
	Red         = "#ff0055"
)

// Theme tracks the current mode. The zero value is the dark theme.
type Theme struct {
	mode Mode
}

// New returns a theme starting in mode m.
func New(m Mode) *Theme {
	return &Theme{mode: m}
}

func (t *Theme) Mode() Mode { return t.mode }

// Toggle flips between dark and light and returns the new mode.
func (t *Theme) Toggle() Mode {
	if t.mode == Dark {
		t.mode = Light
	} else {
		t.mode = Dark
	}
	return t.mode
}

// Accent returns the accent color as a CSS hex string.
func (t *Theme) Accent() string {
	if t.mode == Light {
		return LightAccent
	}
	return DarkAccent
}

func (t *Theme) Background() color.NRGBA {
	if t.mode == Light {
		return color.NRGBA{R: 240, G: 244, B: 248, A: 255}
	}
	return color.NRGBA{R: 5, G: 8, B: 16, A: 255}
}

func (t *Theme) Foreground() color.NRGBA {
	if t.mode == Light {
		return color.NRGBA{R: 20, G: 24, B: 36, A: 255}
	}
	return color.NRGBA{R: 224, G: 230, B: 240, A: 255}
}

// Panel is the translucent fill used behind cards and dialogs.
func (t *Theme) Panel() color.NRGBA {
	if t.mode == Light {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	}
	return color.NRGBA{R: 20, G: 25, B: 35, A: 200}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustHex is ParseHex for package-level literals.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Package ui implements the 2-D component tree: cached component models,
// containers with hit-tested event dispatch, and the widget set built on
// them (ColorBox, TextBox, Button, InputBox).
package ui

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorTransparent = Color{0, 0, 0, 0}

	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}

	// LightGray doubles as the frame clear color.
	ColorLightGray = Color{0.384, 0.396, 0.412, 1}

	ColorPanelBg   = Color{0.08, 0.08, 0.12, 0.95}
	ColorButtonBg  = Color{0.15, 0.15, 0.2, 1}
	ColorInputBg   = Color{0.05, 0.05, 0.08, 1}
	ColorText      = Color{0.9, 0.9, 0.9, 1}
	ColorHighlight = Color{0.2, 0.6, 0.9, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Scale multiplies the RGB channels, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// ToArray returns the color as a vertex attribute array.
func (c Color) ToArray() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

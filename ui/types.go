// Package ui draws the on-screen overlays: the HUD and the orbit tuning panel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	ActiveColor    rl.Color
	InactiveColor  rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme. The scene background is white, so
// text is dark and panels are a translucent light grey.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 245, G: 240, B: 242, A: 220},
		PanelBorder:    rl.Color{R: 200, G: 170, B: 180, A: 255},
		SectionHeader:  rl.Color{R: 204, G: 51, B: 102, A: 255},
		LabelColor:     rl.DarkGray,
		ValueColor:     rl.Black,
		ActiveColor:    rl.Color{R: 60, G: 150, B: 80, A: 255},
		InactiveColor:  rl.Gray,
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     90,
		FontSize:       14,
		HeaderFontSize: 16,
	}
}

package scene

import (
	"github.com/uimock/uimock"
	"github.com/uimock/uimock/text"
)

// Palette is the fixed set of named colors and faces shared by all
// builders in a mockup. It is resolved once at setup and passed by
// reference; fields are never mutated after creation.
type Palette struct {
	// Background is the board background behind all panels.
	Background uimock.RGBA
	// Surface is the default card and phone-body fill.
	Surface uimock.RGBA
	// Raised is the fill for nested cards sitting on a Surface.
	Raised uimock.RGBA
	// Accent marks selected and primary elements.
	Accent uimock.RGBA
	// AccentText is the label color on Accent fills.
	AccentText uimock.RGBA
	// Ink is the primary text color.
	Ink uimock.RGBA
	// Muted is the secondary text color.
	Muted uimock.RGBA
	// Border is the outline color for panels and frames.
	Border uimock.RGBA
	// OK and Warn tint positive and cautionary values.
	OK   uimock.RGBA
	Warn uimock.RGBA

	Title   text.Face
	Heading text.Face
	Body    text.Face
	Caption text.Face
	Small   text.Face
}

// DefaultPalette builds the stock mockup look. Faces are resolved through
// the provider, so a missing family silently falls back to the embedded
// Go fonts.
func DefaultPalette(fonts *text.Provider) *Palette {
	return &Palette{
		Background: uimock.Hex("#F2EFE9"),
		Surface:    uimock.White,
		Raised:     uimock.Hex("#F7F5F0"),
		Accent:     uimock.Hex("#3B6E5C"),
		AccentText: uimock.White,
		Ink:        uimock.Hex("#2B2722"),
		Muted:      uimock.Hex("#8A8378"),
		Border:     uimock.Hex("#D8D2C6"),
		OK:         uimock.Hex("#4C8A4F"),
		Warn:       uimock.Hex("#B26B3C"),

		Title:   fonts.Face("Inter", text.Bold, 30),
		Heading: fonts.Face("Inter", text.Bold, 19),
		Body:    fonts.Face("Inter", text.Regular, 15),
		Caption: fonts.Face("Inter", text.Regular, 12),
		Small:   fonts.Face("Inter", text.Regular, 10),
	}
}

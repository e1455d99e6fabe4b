// Package model defines the core domain entities for the kit service.
package model

// GarmentColor identifies one of the available teamwear colors.
type GarmentColor string

const (
	ColorWhite GarmentColor = "white"
	ColorRed   GarmentColor = "red"
	ColorNavy  GarmentColor = "navy"
	ColorBlack GarmentColor = "black"
)

// GarmentColors lists every defined color in display order.
var GarmentColors = []GarmentColor{ColorWhite, ColorRed, ColorNavy, ColorBlack}

// garmentHex maps each color to the hex value used by order payloads
// and rendering surfaces.
var garmentHex = map[GarmentColor]string{
	ColorWhite: "#FFFFFF",
	ColorRed:   "#DC2626",
	ColorNavy:  "#1E3A8A",
	ColorBlack: "#000000",
}

// IsValid reports whether c is one of the defined garment colors.
func (c GarmentColor) IsValid() bool {
	_, ok := garmentHex[c]
	return ok
}

// Hex returns the hex value for the color, or the white hex for
// undefined input.
func (c GarmentColor) Hex() string {
	if hex, ok := garmentHex[c]; ok {
		return hex
	}
	return garmentHex[ColorWhite]
}

// ContrastColor returns the emblem/text color that contrasts with the
// garment: black on white garments, white on everything else.
func (c GarmentColor) ContrastColor() EmblemColor {
	if c == ColorWhite {
		return EmblemBlack
	}
	return EmblemWhite
}

// ParseGarmentColor converts a color name or hex value to a GarmentColor.
// Unknown input returns ColorWhite and false.
func ParseGarmentColor(s string) (GarmentColor, bool) {
	c := GarmentColor(s)
	if c.IsValid() {
		return c, true
	}
	for color, hex := range garmentHex {
		if hex == s {
			return color, true
		}
	}
	return ColorWhite, false
}

// EmblemColor is the color of the brand emblem artwork. Only white and
// black variants exist.
type EmblemColor string

const (
	EmblemWhite EmblemColor = "white"
	EmblemBlack EmblemColor = "black"
)

// IsValid reports whether e is a defined emblem color.
func (e EmblemColor) IsValid() bool {
	return e == EmblemWhite || e == EmblemBlack
}

// Hex returns the hex value for the emblem color.
func (e EmblemColor) Hex() string {
	if e == EmblemWhite {
		return "#FFFFFF"
	}
	return "#000000"
}

// EmblemChoice captures whether the emblem color follows the garment
// contrast rule or has been fixed by the user.
type EmblemChoice struct {
	Manual bool        `json:"manual"`
	Color  EmblemColor `json:"color,omitempty"`
}

// Resolve returns the effective emblem color for the given garment color.
// A manual choice is honored regardless of garment color; auto applies
// the contrast rule.
func (ec EmblemChoice) Resolve(garment GarmentColor) EmblemColor {
	if ec.Manual {
		return ec.Color
	}
	return garment.ContrastColor()
}

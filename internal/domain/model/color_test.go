package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGarmentColor_ContrastColor(t *testing.T) {
	tests := []struct {
		name     string
		color    GarmentColor
		expected EmblemColor
	}{
		{name: "white garment gets black", color: ColorWhite, expected: EmblemBlack},
		{name: "red garment gets white", color: ColorRed, expected: EmblemWhite},
		{name: "navy garment gets white", color: ColorNavy, expected: EmblemWhite},
		{name: "black garment gets white", color: ColorBlack, expected: EmblemWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color.ContrastColor())
		})
	}
}

func TestGarmentColor_Hex(t *testing.T) {
	assert.Equal(t, "#FFFFFF", ColorWhite.Hex())
	assert.Equal(t, "#DC2626", ColorRed.Hex())
	assert.Equal(t, "#1E3A8A", ColorNavy.Hex())
	assert.Equal(t, "#000000", ColorBlack.Hex())

	// Undefined input falls back to white.
	assert.Equal(t, "#FFFFFF", GarmentColor("chartreuse").Hex())
}

func TestParseGarmentColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected GarmentColor
		ok       bool
	}{
		{name: "color name", input: "navy", expected: ColorNavy, ok: true},
		{name: "hex value", input: "#DC2626", expected: ColorRed, ok: true},
		{name: "unknown name", input: "green", expected: ColorWhite, ok: false},
		{name: "unknown hex", input: "#123456", expected: ColorWhite, ok: false},
		{name: "empty", input: "", expected: ColorWhite, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, ok := ParseGarmentColor(tt.input)
			assert.Equal(t, tt.expected, color)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestEmblemChoice_Resolve(t *testing.T) {
	// Auto follows the garment contrast rule.
	auto := EmblemChoice{}
	assert.Equal(t, EmblemBlack, auto.Resolve(ColorWhite))
	assert.Equal(t, EmblemWhite, auto.Resolve(ColorNavy))

	// Manual wins regardless of garment color.
	manual := EmblemChoice{Manual: true, Color: EmblemBlack}
	assert.Equal(t, EmblemBlack, manual.Resolve(ColorBlack))
	assert.Equal(t, EmblemBlack, manual.Resolve(ColorWhite))
}

func TestEmblemColor_IsValid(t *testing.T) {
	assert.True(t, EmblemWhite.IsValid())
	assert.True(t, EmblemBlack.IsValid())
	assert.False(t, EmblemColor("red").IsValid())
}

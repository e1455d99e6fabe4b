// Package service contains the business logic for the kit service.
package service

import (
	"github.com/tribelet/kit-service/internal/domain/model"
)

// Garment artwork filenames, one front and one back per color.
var (
	frontArtFiles = map[model.GarmentColor]string{
		model.ColorWhite: "TR505_White_FRONTo.png",
		model.ColorRed:   "TR505_RED_FRONTo.png",
		model.ColorNavy:  "TR505_FrenchNavy_FRONTo.png",
		model.ColorBlack: "TR505_Black_FRONTo.png",
	}
	backArtFiles = map[model.GarmentColor]string{
		model.ColorWhite: "TR505_White_BACKo.png",
		model.ColorRed:   "TR505_FireRed_BACKo.png",
		model.ColorNavy:  "TR505_FrenchNavy_BACKo.png",
		model.ColorBlack: "TR505_Black_BACKo.png",
	}
	emblemFiles = map[model.EmblemColor]string{
		model.EmblemWhite: "white_kit_logo.png",
		model.EmblemBlack: "black_kit_logo.png",
	}
)

// AssetResolver maps garment and emblem color choices to artwork assets.
// It is pure and total: every defined color has both artwork assets, and
// undefined input falls back to the white variant rather than failing.
type AssetResolver struct {
	baseURL string
}

// NewAssetResolver creates an AssetResolver serving assets under baseURL.
func NewAssetResolver(baseURL string) *AssetResolver {
	return &AssetResolver{baseURL: baseURL}
}

// FrontArt returns the front garment artwork for the given color.
func (r *AssetResolver) FrontArt(color model.GarmentColor) model.ImageAsset {
	file, ok := frontArtFiles[color]
	if !ok {
		file = frontArtFiles[model.ColorWhite]
	}
	return model.AssetFromURL(r.baseURL + "/" + file)
}

// BackArt returns the back garment artwork for the given color.
func (r *AssetResolver) BackArt(color model.GarmentColor) model.ImageAsset {
	file, ok := backArtFiles[color]
	if !ok {
		file = backArtFiles[model.ColorWhite]
	}
	return model.AssetFromURL(r.baseURL + "/" + file)
}

// Emblem returns the brand emblem artwork for the garment color and
// emblem choice. A manual choice picks the white or black variant
// directly; auto applies the garment contrast rule.
func (r *AssetResolver) Emblem(color model.GarmentColor, choice model.EmblemChoice) model.ImageAsset {
	emblemColor := choice.Resolve(color)
	file, ok := emblemFiles[emblemColor]
	if !ok {
		file = emblemFiles[model.EmblemBlack]
	}
	return model.AssetFromURL(r.baseURL + "/" + file)
}

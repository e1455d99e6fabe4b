package service

import (
	"github.com/tribelet/kit-service/internal/domain/model"
)

// Fixed preview geometry, percent of the rendering surface.
const (
	emblemAnchorX = 25.0
	emblemAnchorY = 25.0
	emblemWidth   = 15.0

	frontImageAnchorX    = 75.0
	frontImageAnchorY    = 25.0
	frontImageWidthRatio = 0.25

	backImageAnchorX    = 50.0
	backImageAnchorY    = 20.0
	backImageWidthRatio = 0.2

	backTextAnchorX       = 50.0
	backTextAnchorY       = 40.0
	backTextWidth         = 60.0
	backTextFontSizeRatio = 0.3
	backTextFontSizeMax   = 24.0
)

// LayerCompositor derives the ordered layer sequence for a kit preview.
// ComputeLayers is pure and deterministic: identical state always yields
// an identical sequence, which keeps the preview testable and leaves the
// door open for server-side rendering.
type LayerCompositor struct {
	resolver *AssetResolver
}

// NewLayerCompositor creates a compositor using the given asset resolver.
func NewLayerCompositor(resolver *AssetResolver) *LayerCompositor {
	return &LayerCompositor{resolver: resolver}
}

// ComputeLayers returns the six preview layers in fixed order: front
// garment, emblem, front placement, back garment, back placement, back
// text. Hidden elements are included with Visible=false so the sequence
// length never varies.
func (c *LayerCompositor) ComputeLayers(state *model.KitState) []model.Layer {
	frontImage := state.EffectiveImage(model.PlacementFront)
	backImage := state.EffectiveImage(model.PlacementBack)

	layers := []model.Layer{
		{
			Kind:         model.LayerGarmentFront,
			Asset:        c.resolver.FrontArt(state.Color),
			WidthPercent: 100,
			Visible:      true,
		},
		{
			Kind:           model.LayerEmblem,
			Asset:          c.resolver.Emblem(state.Color, state.Emblem),
			AnchorXPercent: emblemAnchorX,
			AnchorYPercent: emblemAnchorY,
			WidthPercent:   emblemWidth,
			Visible:        true,
		},
		{
			Kind:           model.LayerFrontImage,
			Asset:          frontImage,
			AnchorXPercent: frontImageAnchorX,
			AnchorYPercent: frontImageAnchorY,
			WidthPercent:   float64(state.Front.ScalePercent) * frontImageWidthRatio,
			Visible:        state.Front.Visible && !frontImage.IsEmpty(),
		},
		{
			Kind:         model.LayerGarmentBack,
			Asset:        c.resolver.BackArt(state.Color),
			WidthPercent: 100,
			Visible:      true,
		},
		{
			Kind:           model.LayerBackImage,
			Asset:          backImage,
			AnchorXPercent: backImageAnchorX,
			AnchorYPercent: backImageAnchorY,
			WidthPercent:   float64(state.Back.ScalePercent) * backImageWidthRatio,
			Visible:        state.Back.Visible && !backImage.IsEmpty(),
		},
		c.backTextLayer(state),
	}

	return layers
}

// backTextLayer builds the back-print text layer. The text color always
// follows the garment contrast rule, independent of a manual emblem
// override, and visibility is gated on the word limit regardless of the
// stored enabled flag.
func (c *LayerCompositor) backTextLayer(state *model.KitState) model.Layer {
	fontSize := float64(state.BackPrint.ScalePercent) * backTextFontSizeRatio
	if fontSize > backTextFontSizeMax {
		fontSize = backTextFontSizeMax
	}

	return model.Layer{
		Kind:           model.LayerBackText,
		Text:           state.BackPrint.Text,
		Font:           string(state.BackPrint.Font),
		TextColor:      state.Color.ContrastColor().Hex(),
		AnchorXPercent: backTextAnchorX,
		AnchorYPercent: backTextAnchorY,
		WidthPercent:   backTextWidth,
		FontSizePx:     fontSize,
		Visible:        state.BackPrint.RenderVisible(),
	}
}

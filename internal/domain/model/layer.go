package model

// LayerKind identifies one positioned element of the composited preview.
type LayerKind string

const (
	LayerGarmentFront LayerKind = "garment_front"
	LayerEmblem       LayerKind = "emblem"
	LayerFrontImage   LayerKind = "front_image"
	LayerGarmentBack  LayerKind = "garment_back"
	LayerBackImage    LayerKind = "back_image"
	LayerBackText     LayerKind = "back_text"
)

// Layer is one visual element in the composited preview. Anchors and
// widths are percentages of the rendering surface; FontSizePx only
// applies to text layers.
type Layer struct {
	Kind           LayerKind  `json:"kind"`
	Asset          ImageAsset `json:"asset,omitempty"`
	Text           string     `json:"text,omitempty"`
	Font           string     `json:"font,omitempty"`
	TextColor      string     `json:"text_color,omitempty"`
	AnchorXPercent float64    `json:"anchor_x_percent"`
	AnchorYPercent float64    `json:"anchor_y_percent"`
	WidthPercent   float64    `json:"width_percent"`
	FontSizePx     float64    `json:"font_size_px,omitempty"`
	Visible        bool       `json:"visible"`
}

package model

// ImageAsset is an opaque reference to image bytes: a remote URL, a
// data-URI, or empty. Intrinsic size and byte size are recorded at
// ingestion and not re-validated on reuse.
type ImageAsset struct {
	// Ref is the image reference (URL or data-URI). Empty means no image.
	Ref string `json:"ref"`
	// Width and Height are the declared pixel dimensions, when known.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	// ByteSize is the original byte size, when known.
	ByteSize int64 `json:"byte_size,omitempty"`
}

// IsEmpty reports whether the asset carries no image reference.
func (a ImageAsset) IsEmpty() bool {
	return a.Ref == ""
}

// AssetFromURL wraps a remote URL as an ImageAsset with unknown
// dimensions.
func AssetFromURL(url string) ImageAsset {
	return ImageAsset{Ref: url}
}

package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/metrics"
)

// Default upload limits.
const (
	DefaultMaxUploadBytes = 2 * 1024 * 1024
	DefaultMaxDimension   = 1000
)

// UploadRejection explains why an upload was refused. It is a
// user-correctable condition, never fatal.
type UploadRejection struct {
	Reason model.RejectionReason
	Detail string
}

// Error returns the rejection message.
func (e *UploadRejection) Error() string {
	return fmt.Sprintf("upload rejected (%s): %s", e.Reason, e.Detail)
}

// UploadValidator enforces size and dimension constraints on uploaded
// artwork. It holds no mutable state; assigning an accepted asset into
// a placement slot or the team logo is the caller's job.
type UploadValidator struct {
	maxBytes     int64
	maxDimension int
}

// NewUploadValidator creates a validator with the given limits. Zero
// values fall back to the defaults (2 MiB, 1000x1000).
func NewUploadValidator(maxBytes int64, maxDimension int) *UploadValidator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &UploadValidator{maxBytes: maxBytes, maxDimension: maxDimension}
}

// Validate checks the raw image bytes and, on success, returns an
// ImageAsset wrapping a data-URI of the original bytes. No resampling
// is performed. The byte-size check runs before any decode so oversized
// blobs are rejected regardless of dimensions.
func (v *UploadValidator) Validate(data []byte) (model.ImageAsset, error) {
	if int64(len(data)) > v.maxBytes {
		metrics.RecordUpload("too_large")
		return model.ImageAsset{}, &UploadRejection{
			Reason: model.RejectTooLarge,
			Detail: fmt.Sprintf("image exceeds %d bytes", v.maxBytes),
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		metrics.RecordUpload("undecodable")
		return model.ImageAsset{}, &UploadRejection{
			Reason: model.RejectUndecodable,
			Detail: "image could not be decoded",
		}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > v.maxDimension || height > v.maxDimension {
		metrics.RecordUpload("dimensions_exceeded")
		return model.ImageAsset{}, &UploadRejection{
			Reason: model.RejectDimensionsExceeded,
			Detail: fmt.Sprintf("image dimensions must not exceed %dx%d pixels", v.maxDimension, v.maxDimension),
		}
	}

	metrics.RecordUpload("accepted")
	return model.ImageAsset{
		Ref:      dataURI(data),
		Width:    width,
		Height:   height,
		ByteSize: int64(len(data)),
	}, nil
}

// Thumbnail derives a JPEG thumbnail bounded to maxDim on the longest
// side, used when archiving team logos. The original asset is never
// resampled; this is a separate derived artifact.
func (v *UploadValidator) Thumbnail(data []byte, maxDim int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail source: %w", err)
	}

	thumb := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(75)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// dataURI wraps raw image bytes as a base64 data-URI with a sniffed
// content type.
func dataURI(data []byte) string {
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

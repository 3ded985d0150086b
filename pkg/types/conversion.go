// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of a single image conversion.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Conversion records one conversion attempt: the source image, the JPEG
// it produced, and how the attempt ended. Failed attempts carry the error
// text and no output path.
type Conversion struct {
	// Source is the path of the discovered image file.
	Source string `json:"source" yaml:"source"`

	// Output is the path of the produced JPEG. Empty on failure.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Status tracks whether the conversion succeeded.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure cause when Status is ConversionFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

package pdf

import "context"

// ConvertOptions narrows what the external converter is asked to produce.
type ConvertOptions struct {
	// Pages selects 1-based page numbers; nil means the whole document.
	Pages []int
	// RotatePage mirrors the converter's page auto-rotation flag. Low
	// image-quality requests turn it off.
	RotatePage bool
}

type WordConverter interface {
	ConvertToWord(ctx context.Context, inputPath, outputPath string, opts ConvertOptions) error
}

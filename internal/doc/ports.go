package doc

import "context"

// PdfRenderer turns a Word document into a PDF. The two implementations
// (built-in canvas renderer, LibreOffice automation) are alternatives picked
// once at startup, never per request.
type PdfRenderer interface {
	RenderPdf(ctx context.Context, inputPath, outputPath string, opts RenderOptions) error
}

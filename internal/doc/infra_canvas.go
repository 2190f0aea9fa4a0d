package doc

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/tsawler/tabula/docx"
)

const (
	pageMargin   = 72.0
	bodyFontSize = 12.0
	lineHeight   = 16.0

	// AttributionFooter is printed at the bottom of every rendered page.
	AttributionFooter = "Converted by convertd (text-only rendition)"
)

// CanvasRenderer paints paragraph text onto PDF pages itself. Nothing of the
// source styling survives: every paragraph comes out as Helvetica 12, wrapped
// greedily against the page width.
type CanvasRenderer struct{}

func NewCanvasRenderer() *CanvasRenderer {
	return &CanvasRenderer{}
}

func (c *CanvasRenderer) RenderPdf(
	ctx context.Context,
	inputPath, outputPath string,
	opts RenderOptions,
) error {

	reader, err := docx.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading word document: %w", err)
	}
	defer reader.Close()

	text, err := reader.Text()
	if err != nil {
		return fmt.Errorf("extracting text: %w", err)
	}

	pdf := gofpdf.New(opts.fpdfOrientation(), "pt", opts.fpdfSize(), "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetY(-pageMargin / 2)
		pdf.CellFormat(0, 10, AttributionFooter, "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	width, height := opts.Dimensions()
	maxWidth := width - 2*pageMargin
	bottom := height - pageMargin

	y := pageMargin + lineHeight
	writeLine := func(s string) {
		if y > bottom {
			pdf.AddPage()
			// The footer hook leaves its own font active.
			pdf.SetFont("Helvetica", "", bodyFontSize)
			y = pageMargin + lineHeight
		}
		pdf.Text(pageMargin, y, tr(s))
		y += lineHeight
	}

	// Title line and metadata block, then the document body.
	pdf.SetFont("Helvetica", "B", 14)
	writeLine(opts.SourceName)

	format := strings.ToUpper(strings.TrimPrefix(filepath.Ext(opts.SourceName), "."))
	pdf.SetFont("Helvetica", "", 9)
	writeLine("Converted: " + time.Now().UTC().Format(time.RFC3339))
	writeLine("Original format: " + format)
	writeLine(fmt.Sprintf("Page size: %s (%s)", opts.Size, opts.Orientation))
	y += lineHeight

	pdf.SetFont("Helvetica", "", bodyFontSize)
	measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }

	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		for _, line := range wrapLine(paragraph, maxWidth, measure) {
			writeLine(line)
		}
		y += lineHeight / 2
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// wrapLine splits text into lines no wider than maxWidth, breaking greedily
// on spaces. A single word wider than maxWidth gets a line of its own.
func wrapLine(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

func (o RenderOptions) fpdfSize() string {
	switch o.Size {
	case PageLetter:
		return "Letter"
	case PageLegal:
		return "Legal"
	default:
		return "A4"
	}
}

func (o RenderOptions) fpdfOrientation() string {
	if o.Orientation == Landscape {
		return "L"
	}
	return "P"
}

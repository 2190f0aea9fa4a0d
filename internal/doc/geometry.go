package doc

import "strings"

type PageSize string

const (
	PageA4     PageSize = "a4"
	PageLetter PageSize = "letter"
	PageLegal  PageSize = "legal"
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// RenderOptions carries the user-facing knobs of the Word-to-PDF path.
type RenderOptions struct {
	Size        PageSize
	Orientation Orientation
	// SourceName is the original upload filename. The canvas renderer prints
	// it as the title line and derives the original format from it.
	SourceName string
}

// Portrait page dimensions in points.
var pageSizes = map[PageSize][2]float64{
	PageA4:     {595.28, 841.89},
	PageLetter: {612, 792},
	PageLegal:  {612, 1008},
}

// ParsePageSize maps a form value onto a known page size. Unrecognized values
// fall back to A4 instead of failing the request.
func ParsePageSize(s string) PageSize {
	switch PageSize(strings.ToLower(strings.TrimSpace(s))) {
	case PageLetter:
		return PageLetter
	case PageLegal:
		return PageLegal
	default:
		return PageA4
	}
}

// ParseOrientation maps a form value onto an orientation, defaulting to
// portrait.
func ParseOrientation(s string) Orientation {
	if Orientation(strings.ToLower(strings.TrimSpace(s))) == Landscape {
		return Landscape
	}
	return Portrait
}

// Dimensions returns the page width and height in points, swapped for
// landscape.
func (o RenderOptions) Dimensions() (width, height float64) {
	d, ok := pageSizes[o.Size]
	if !ok {
		d = pageSizes[PageA4]
	}
	if o.Orientation == Landscape {
		return d[1], d[0]
	}
	return d[0], d[1]
}

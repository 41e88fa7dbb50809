package pdfgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Paper formats supported by the service. Dimensions are in inches, the
// unit Chrome's Page.printToPDF expects.
const (
	FormatA4     = "A4"
	FormatLetter = "Letter"
	FormatLegal  = "Legal"
)

var paperSizes = map[string]struct{ width, height float64 }{
	FormatA4:     {8.27, 11.69},
	FormatLetter: {8.5, 11.0},
	FormatLegal:  {8.5, 14.0},
}

// Orientation values accepted in render options.
const (
	Portrait  = "portrait"
	Landscape = "landscape"
)

// Margins holds the four page margins as CSS length strings ("10mm",
// "1cm", "0.5in", "20px"). Empty fields take their documented defaults.
type Margins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// PageOptions controls pagination and page geometry for a single render.
//
// Zero-value fields resolve field-by-field to the defaults: A4, portrait,
// and 10mm margins except for a 45mm bottom margin. The oversized bottom
// margin reserves vertical space for the injected footer.
type PageOptions struct {
	Format      string
	Orientation string
	Margins     Margins
}

// DefaultPageOptions returns the documented default page geometry.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Format:      FormatA4,
		Orientation: Portrait,
		Margins: Margins{
			Top:    "10mm",
			Right:  "10mm",
			Bottom: "45mm",
			Left:   "10mm",
		},
	}
}

// resolved returns a copy with every empty or unknown field replaced by
// its default. Each margin field defaults independently.
func (o PageOptions) resolved() PageOptions {
	d := DefaultPageOptions()
	if _, ok := paperSizes[o.Format]; !ok {
		o.Format = d.Format
	}
	if o.Orientation != Landscape {
		o.Orientation = d.Orientation
	}
	if o.Margins.Top == "" {
		o.Margins.Top = d.Margins.Top
	}
	if o.Margins.Right == "" {
		o.Margins.Right = d.Margins.Right
	}
	if o.Margins.Bottom == "" {
		o.Margins.Bottom = d.Margins.Bottom
	}
	if o.Margins.Left == "" {
		o.Margins.Left = d.Margins.Left
	}
	return o
}

// paperDimensions returns the paper width and height in inches. The
// landscape flag is passed to the engine separately, so dimensions are
// always the portrait ones.
func (o PageOptions) paperDimensions() (width, height float64) {
	r := o.resolved()
	size := paperSizes[r.Format]
	return size.width, size.height
}

// marginInches converts the four margins to inches.
func (o PageOptions) marginInches() (top, right, bottom, left float64, err error) {
	r := o.resolved()
	if top, err = cssLengthToInches(r.Margins.Top); err != nil {
		return
	}
	if right, err = cssLengthToInches(r.Margins.Right); err != nil {
		return
	}
	if bottom, err = cssLengthToInches(r.Margins.Bottom); err != nil {
		return
	}
	left, err = cssLengthToInches(r.Margins.Left)
	return
}

// cssLengthToInches parses a CSS length ("45mm", "1.5cm", "0.5in", "96px")
// into inches. Bare numbers are treated as pixels, matching Chrome.
func cssLengthToInches(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	unit := "px"
	num := s
	for _, u := range []string{"mm", "cm", "in", "px"} {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSuffix(s, u)
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("pdfgen: invalid CSS length %q", s)
	}

	switch unit {
	case "mm":
		return v / 25.4, nil
	case "cm":
		return v / 2.54, nil
	case "in":
		return v, nil
	default: // px at 96 dpi
		return v / 96.0, nil
	}
}

package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"wealthcheck/internal/models"
)

// HoleRatio is the inner radius of the donut as a fraction of the outer radius.
const HoleRatio = 0.4

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B int
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var palette = map[models.Bucket]RGB{
	models.BucketEquity:      {R: 31, G: 119, B: 180},
	models.BucketFixedIncome: {R: 255, G: 127, B: 14},
	models.BucketRealEstate:  {R: 44, G: 160, B: 44},
	models.BucketGold:        {R: 214, G: 39, B: 40},
	models.BucketCash:        {R: 148, G: 103, B: 189},
}

// BucketColor returns the chart colour of b.
func BucketColor(b models.Bucket) RGB {
	if c, ok := palette[b]; ok {
		return c
	}
	return RGB{R: 127, G: 127, B: 127}
}

// markerColors maps a risk marker name to its colour.
var markerColors = map[string]RGB{
	"red":    {R: 214, G: 39, B: 40},
	"yellow": {R: 230, G: 180, B: 0},
	"green":  {R: 44, G: 160, B: 44},
	"blue":   {R: 31, G: 119, B: 180},
}

// MarkerColor returns the colour for a risk marker, grey if unknown.
func MarkerColor(marker string) RGB {
	if c, ok := markerColors[marker]; ok {
		return c
	}
	return RGB{R: 127, G: 127, B: 127}
}

// Point is a position in a y-down coordinate space (SVG and PDF agree on that).
type Point struct {
	X, Y float64
}

// Slice is one donut segment. Angles are radians measured clockwise from twelve
// o'clock.
type Slice struct {
	Bucket  models.Bucket
	Label   string
	Percent float64
	Start   float64
	End     float64
	Color   RGB
}

// Slices lays out the non-empty buckets around the circle in bucket order.
func Slices(a models.AllocationBreakdown) []Slice {
	var out []Slice
	angle := 0.0
	for _, s := range a.Shares {
		if s.Percent <= 0 {
			continue
		}
		sweep := 2 * math.Pi * s.Percent / 100
		out = append(out, Slice{
			Bucket:  s.Bucket,
			Label:   s.Label,
			Percent: s.Percent,
			Start:   angle,
			End:     angle + sweep,
			Color:   BucketColor(s.Bucket),
		})
		angle += sweep
	}
	return out
}

func polar(c Point, r, angle float64) Point {
	return Point{X: c.X + r*math.Sin(angle), Y: c.Y - r*math.Cos(angle)}
}

// Ring approximates the slice as a closed polygon between the inner and outer
// radius. Arcs get one vertex per step degrees, at least two.
func (s Slice) Ring(c Point, outer, inner, step float64) []Point {
	n := int(math.Ceil((s.End - s.Start) * 180 / math.Pi / step))
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		pts = append(pts, polar(c, outer, s.Start+(s.End-s.Start)*float64(i)/float64(n)))
	}
	for i := n; i >= 0; i-- {
		pts = append(pts, polar(c, inner, s.Start+(s.End-s.Start)*float64(i)/float64(n)))
	}
	return pts
}

// Mid returns the point halfway along the slice at radius r.
func (s Slice) Mid(c Point, r float64) Point {
	return polar(c, r, (s.Start+s.End)/2)
}

const (
	svgWidth   = 640
	svgHeight  = 360
	svgRadius  = 150
	svgStep    = 2.0
	minLabeled = 4.0 // slices narrower than this many percent get no inner label
)

// SVG renders the allocation donut with percentage labels and a legend.
func SVG(r models.Report) []byte {
	var b bytes.Buffer
	c := Point{X: 180, Y: svgHeight / 2}

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="Helvetica, Arial, sans-serif">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(&b, `<title>Asset allocation for %s</title>`+"\n", html.EscapeString(r.Client.Name))
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	slices := Slices(r.Allocation)
	for _, s := range slices {
		b.WriteString(`<path d="`)
		for i, p := range s.Ring(c, svgRadius, svgRadius*HoleRatio, svgStep) {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&b, "%s%.2f %.2f ", cmd, p.X, p.Y)
		}
		fmt.Fprintf(&b, `Z" fill="%s" stroke="#ffffff" stroke-width="1"/>`+"\n", s.Color.Hex())
	}

	for _, s := range slices {
		if s.Percent < minLabeled {
			continue
		}
		p := s.Mid(c, svgRadius*(1+HoleRatio)/2)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" font-size="13" fill="#ffffff" text-anchor="middle" dominant-baseline="middle">%.1f%%</text>`+"\n",
			p.X, p.Y, s.Percent)
	}

	y := c.Y - float64(len(slices))*14
	for _, s := range slices {
		fmt.Fprintf(&b, `<rect x="370" y="%.2f" width="14" height="14" fill="%s"/>`+"\n", y, s.Color.Hex())
		fmt.Fprintf(&b, `<text x="392" y="%.2f" font-size="14" fill="#333333">%s %.1f%%</text>`+"\n",
			y+12, html.EscapeString(s.Label), s.Percent)
		y += 28
	}

	b.WriteString("</svg>\n")
	return b.Bytes()
}

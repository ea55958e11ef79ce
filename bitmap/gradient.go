package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ParchmentLight is the light end of the default gradient, #f9f5ea.
	ParchmentLight = color.NRGBA{R: 249, G: 245, B: 234, A: 255}
	// GoldAccent is the dark end of the default gradient, #3f3426.
	GoldAccent = color.NRGBA{R: 63, G: 52, B: 38, A: 255}

	// DefaultGradient maps black to GoldAccent and white to ParchmentLight.
	DefaultGradient = Gradient{Dark: GoldAccent, Light: ParchmentLight}
)

// ErrLevels is returned when a palette is requested with fewer than two
// colours.
var ErrLevels = errors.New("number of levels must be at least 2")

// ErrHexColour is returned for colours not in "#rrggbb" or "#rgb" form.
var ErrHexColour = errors.New("colour must be #rrggbb or #rgb")

var reHexColour = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Gradient is a linear two-colour gradient.  Dark is the colour at luminance
// 0, Light at luminance 1.  Alpha of the endpoints is ignored.
type Gradient struct {
	Dark  color.NRGBA
	Light color.NRGBA
}

// ParseGradient parses the endpoints given as hex colours, i.e. "#3f3426" or
// "#fff".
func ParseGradient(dark, light string) (Gradient, error) {
	d, err := parseHex(dark)
	if err != nil {
		return Gradient{}, fmt.Errorf("dark colour: %w", err)
	}
	l, err := parseHex(light)
	if err != nil {
		return Gradient{}, fmt.Errorf("light colour: %w", err)
	}
	return Gradient{Dark: d, Light: l}, nil
}

// parseHex parses s with colorful.Hex, which scans with Sscanf and would
// accept a short value or ignore trailing characters, so the form is checked
// first.
func parseHex(s string) (color.NRGBA, error) {
	if !reHexColour.MatchString(s) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrHexColour, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex returns the colour as "#rrggbb".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (g Gradient) String() string {
	return Hex(g.Dark) + " <-> " + Hex(g.Light)
}

// At returns the opaque colour at position t of the gradient, t is clamped to
// [0, 1].  Channels are truncated, not rounded.
func (g Gradient) At(t float64) color.NRGBA {
	t = min(max(t, 0), 1)
	return color.NRGBA{
		R: lerp(g.Dark.R, g.Light.R, t),
		G: lerp(g.Dark.G, g.Light.G, t),
		B: lerp(g.Dark.B, g.Light.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Recolor returns a copy of img where each pixel is replaced with the
// gradient colour at the pixel's luminance.  The alpha channel is kept as is.
func (g Gradient) Recolor(img image.Image) *image.NRGBA {
	dst := NRGBA(img)
	eachPixel(dst, func(i int) {
		src := pixel(dst.Pix, i)
		c := g.At(Luminance(src))
		c.A = src.A
		setPixel(dst.Pix, i, c)
	})
	return dst
}

// Palette returns levels evenly spaced stops of the gradient, from Dark to
// Light.
func (g Gradient) Palette(levels int) (color.Palette, error) {
	if levels < 2 {
		return nil, fmt.Errorf("%w: %d", ErrLevels, levels)
	}
	pal := make(color.Palette, levels)
	for i := range levels {
		pal[i] = g.At(float64(i) / float64(levels-1))
	}
	return pal, nil
}

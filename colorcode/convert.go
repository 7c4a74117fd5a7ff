package colorcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds byte channels of a 24-bit color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK holds rounded percentages.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// ParseHex parses a 6 digit hex string, with or without a leading '#'.
func ParseHex(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, true
}

// HexToRGB is ParseHex with malformed input collapsed to black.
func HexToRGB(hex string) RGB {
	rgb, _ := ParseHex(hex)
	return rgb
}

// RGBToHex clamps and rounds each channel and renders "#RRGGBB".
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

func clampChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// NormalizeHex returns the canonical "#RRGGBB" form, or false if hex is malformed.
func NormalizeHex(hex string) (string, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// ToHSL converts a hex color to HSL. Malformed hex yields the zero HSL.
func ToHSL(hex string) HSL {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSL{}
	}
	return rgbToHSL(rgb)
}

func rgbToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		// achromatic
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// GetHue returns the hue of hex in degrees, 0 for achromatic or malformed input.
func GetHue(hex string) float64 {
	return ToHSL(hex).H
}

// GetSaturation returns the HSL saturation of hex in percent.
func GetSaturation(hex string) float64 {
	return ToHSL(hex).S
}

// GetLightness returns the HSL lightness of hex in percent.
func GetLightness(hex string) float64 {
	return ToHSL(hex).L
}

// WrapHue folds any hue into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HSLToHex converts HSL to hex. The hue is wrapped, saturation and lightness
// are clamped to [0,100].
func HSLToHex(h, s, l float64) string {
	h = WrapHue(h) / 360
	s = math.Max(0, math.Min(100, s)) / 100
	l = math.Max(0, math.Min(100, l)) / 100

	if s == 0 {
		return RGBToHex(l*255, l*255, l*255)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBToHex(
		hueToChannel(p, q, h+1.0/3.0)*255,
		hueToChannel(p, q, h)*255,
		hueToChannel(p, q, h-1.0/3.0)*255,
	)
}

// Hex renders the HSL color as "#RRGGBB".
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// HexToCMYK derives subtractive percentages. Pure black is c=m=y=0, k=100.
func HexToCMYK(hex string) CMYK {
	rgb := HexToRGB(hex)
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{K: 100}
	}

	pct := func(v float64) int { return int(math.Round(v * 100)) }
	return CMYK{
		C: pct((1 - r - k) / (1 - k)),
		M: pct((1 - g - k) / (1 - k)),
		Y: pct((1 - b - k) / (1 - k)),
		K: pct(k),
	}
}

// BlendColors interpolates linearly between a and b in RGB space. Ratios
// outside [0,1] extrapolate and are clamped per channel.
func BlendColors(a, b string, ratio float64) string {
	ca := HexToRGB(a)
	cb := HexToRGB(b)
	mix := func(x, y int) float64 {
		return float64(x) + (float64(y)-float64(x))*ratio
	}
	return RGBToHex(mix(ca.R, cb.R), mix(ca.G, cb.G), mix(ca.B, cb.B))
}

// RGBString renders hex as "rgb(r,g,b)".
func RGBString(hex string) string {
	c := HexToRGB(hex)
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ContrastText picks black or white text for legibility on top of hex.
func ContrastText(hex string) string {
	c := HexToRGB(hex)
	lin := func(v int) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	lum := 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
	if lum > 0.179 {
		return "#000000"
	}
	return "#FFFFFF"
}

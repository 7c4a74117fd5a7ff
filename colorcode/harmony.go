package colorcode

import (
	"fmt"
	"math"
)

// Harmony names a color theory relation between a base hue and derived hues.
type Harmony string

const (
	Complementary      Harmony = "complementary"
	Analogous          Harmony = "analogous"
	Triadic            Harmony = "triadic"
	SplitComplementary Harmony = "split-complementary"
	Monochromatic      Harmony = "monochromatic"
)

// Harmonies lists every supported harmony in display order.
var Harmonies = []Harmony{Complementary, Analogous, Triadic, SplitComplementary, Monochromatic}

// ParseHarmony validates a harmony name.
func ParseHarmony(s string) (Harmony, error) {
	for _, h := range Harmonies {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown harmony %q", s)
}

// rotated harmony colors are normalized to this tone
const (
	harmonySaturation = 70
	harmonyLightness  = 50
	monoStep          = 30
)

func rotate(hex string, offsets ...float64) []string {
	h := GetHue(hex)
	out := make([]string, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, HSLToHex(h+off, harmonySaturation, harmonyLightness))
	}
	return out
}

// ComplementaryOf returns the hue opposite to hex.
func ComplementaryOf(hex string) []string {
	return rotate(hex, 180)
}

// AnalogousOf returns the hues 30 degrees either side of hex.
func AnalogousOf(hex string) []string {
	return rotate(hex, -30, 30)
}

// TriadicOf returns the two hues spaced evenly around the wheel from hex.
func TriadicOf(hex string) []string {
	return rotate(hex, 120, 240)
}

// SplitComplementaryOf returns the hues next to the complement of hex.
func SplitComplementaryOf(hex string) []string {
	return rotate(hex, 150, 210)
}

// MonochromaticOf returns a lighter and a darker tint of hex keeping its hue
// and saturation.
func MonochromaticOf(hex string) []string {
	hsl := ToHSL(hex)
	return []string{
		HSLToHex(hsl.H, hsl.S, math.Min(100, hsl.L+monoStep)),
		HSLToHex(hsl.H, hsl.S, math.Max(0, hsl.L-monoStep)),
	}
}

// Harmonize returns the colors related to hex by h. Unknown harmonies give nil.
func Harmonize(hex string, h Harmony) []string {
	switch h {
	case Complementary:
		return ComplementaryOf(hex)
	case Analogous:
		return AnalogousOf(hex)
	case Triadic:
		return TriadicOf(hex)
	case SplitComplementary:
		return SplitComplementaryOf(hex)
	case Monochromatic:
		return MonochromaticOf(hex)
	}
	return nil
}

// AllHarmonies computes every harmony of hex.
func AllHarmonies(hex string) map[Harmony][]string {
	out := make(map[Harmony][]string, len(Harmonies))
	for _, h := range Harmonies {
		out[h] = Harmonize(hex, h)
	}
	return out
}

// Temperature classifies hex as "warm", "cool" or "neutral" for grays.
// Its hue edges are independent of the naming buckets.
func Temperature(hex string) string {
	hsl := ToHSL(hex)
	if hsl.S == 0 {
		return "neutral"
	}
	if hsl.H < 90 || hsl.H >= 270 {
		return "warm"
	}
	return "cool"
}

// Description bundles everything derivable from a hex color.
type Description struct {
	Hex         string               `json:"hex"`
	RGB         RGB                  `json:"rgb"`
	RGBString   string               `json:"rgbString"`
	HSL         HSL                  `json:"hsl"`
	CMYK        CMYK                 `json:"cmyk"`
	Name        string               `json:"name"`
	Temperature string               `json:"temperature"`
	TextColor   string               `json:"textColor"`
	Harmonies   map[Harmony][]string `json:"harmonies"`
}

// Describe derives a full description of hex. The HSL values are rounded to
// one decimal for display.
func Describe(hex string) Description {
	rgb := HexToRGB(hex)
	canonical := rgb.Hex()
	hsl := rgbToHSL(rgb)
	hue := roundTenth(hsl.H)
	if hue >= 360 {
		hue = 0
	}
	return Description{
		Hex:       canonical,
		RGB:       rgb,
		RGBString: RGBString(canonical),
		HSL: HSL{
			H: hue,
			S: roundTenth(hsl.S),
			L: roundTenth(hsl.L),
		},
		CMYK:        HexToCMYK(canonical),
		Name:        NameColor(canonical),
		Temperature: Temperature(canonical),
		TextColor:   ContrastText(canonical),
		Harmonies:   AllHarmonies(canonical),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

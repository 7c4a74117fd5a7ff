package colorcode

type hueBucket struct {
	upTo float64
	name string
}

// naming sectors, each bucket covers hues below upTo
var nameBuckets = []hueBucket{
	{15, "Red"},
	{45, "Orange"},
	{75, "Yellow"},
	{135, "Green"},
	{195, "Cyan"},
	{255, "Blue"},
	{300, "Purple"},
	{345, "Pink"},
	{360, "Red"},
}

// HueName returns the color family name of a hue in degrees.
func HueName(h float64) string {
	h = WrapHue(h)
	for _, b := range nameBuckets {
		if h < b.upTo {
			return b.name
		}
	}
	return "Red"
}

// NamePrefix returns the intensity prefix for a saturation/lightness pair,
// or "" when none applies.
func NamePrefix(s, l float64) string {
	switch {
	case l < 20:
		return "Dark"
	case l > 80:
		return "Light"
	case s < 20:
		return "Grayish"
	case s > 80:
		return "Vivid"
	}
	return ""
}

// NameColor gives hex a readable name such as "Vivid Orange". Names are not
// unique; many colors share one.
func NameColor(hex string) string {
	hsl := ToHSL(hex)
	name := HueName(hsl.H)
	if prefix := NamePrefix(hsl.S, hsl.L); prefix != "" {
		return prefix + " " + name
	}
	return name
}

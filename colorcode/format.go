package colorcode

import (
	"regexp"
)

// FormatSpec describes one accepted color code format.
type FormatSpec struct {
	Name    string
	Pattern *regexp.Regexp
	// Prefix is prepended to the code when it is shown in canonical form.
	Prefix string
}

func (f FormatSpec) String() string {
	return f.Name
}

// Matches reports whether code matches the format in full.
func (f FormatSpec) Matches(code string) bool {
	return f.Pattern.MatchString(code)
}

var (
	// FormatHex is a plain 24-bit hex color, e.g. FF8800.
	FormatHex = FormatSpec{
		Name:    "hex",
		Pattern: regexp.MustCompile(`(?i)^[0-9A-F]{6}$`),
		Prefix:  "#",
	}
	// FormatPaint is a house paint chip code, e.g. 8002-45C.
	FormatPaint = FormatSpec{
		Name:    "paint",
		Pattern: regexp.MustCompile(`(?i)^\d{4}-\d{2}[A-Z]$`),
	}
	// FormatAutoPaint is an automotive paint code, e.g. NH731P or KAD.
	FormatAutoPaint = FormatSpec{
		Name:    "auto-paint",
		Pattern: regexp.MustCompile(`(?i)^(?:(?:[A-Z]{2})?\d{3}[A-Z]|[A-Z]{2,3})$`),
	}
)

// Formats lists every known format in classification priority order.
func Formats() []FormatSpec {
	return []FormatSpec{FormatHex, FormatPaint, FormatAutoPaint}
}

// LookupFormat finds a format by name.
func LookupFormat(name string) (FormatSpec, bool) {
	for _, f := range Formats() {
		if f.Name == name {
			return f, true
		}
	}
	return FormatSpec{}, false
}

// Classify returns the first format whose pattern matches code. The code is
// expected trimmed and without a leading '#'.
func Classify(code string) (FormatSpec, bool) {
	for _, f := range Formats() {
		if f.Matches(code) {
			return f, true
		}
	}
	return FormatSpec{}, false
}

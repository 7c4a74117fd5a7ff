package colorcode

import (
	_ "embed"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed default_codes.yaml
var defaultCodes []byte

// Table maps vendor codes to verified hex colors. A Table is immutable once
// built and safe to share between goroutines.
type Table struct {
	codes map[string]string
}

type tableFile struct {
	Codes map[string]string `yaml:"codes"`
}

// NewTable copies codes into a new Table, normalizing keys to upper case and
// values to "#RRGGBB".
func NewTable(codes map[string]string) (*Table, error) {
	t := &Table{codes: make(map[string]string, len(codes))}
	for code, hex := range codes {
		key := normalizeCode(code)
		if key == "" {
			return nil, errors.New("empty vendor code in table")
		}
		norm, ok := NormalizeHex(hex)
		if !ok {
			return nil, errors.Errorf("vendor code %s: invalid hex %q", code, hex)
		}
		t.codes[key] = norm
	}
	return t, nil
}

// ParseTable reads a YAML document of the form `codes: {CODE: "#RRGGBB"}`.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing vendor code table")
	}
	return NewTable(f.Codes)
}

// LoadTable reads a vendor code table from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading vendor code table %s", path)
	}
	return ParseTable(data)
}

// DefaultTable returns the table bundled with the binary.
func DefaultTable() *Table {
	t, err := ParseTable(defaultCodes)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the verified hex for code.
func (t *Table) Lookup(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	hex, ok := t.codes[normalizeCode(code)]
	return hex, ok
}

// Len returns the number of codes in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(code), "#"))
}

// paint family base colors keyed by the suffix letter.
var paintFamilies = map[byte]RGB{
	'A': {R: 200, G: 40, B: 40},
	'B': {R: 230, G: 120, B: 30},
	'C': {R: 40, G: 90, B: 160},
	'D': {R: 50, G: 140, B: 70},
	'E': {R: 220, G: 190, B: 50},
	'F': {R: 120, G: 70, B: 150},
	'G': {R: 130, G: 90, B: 60},
}

var neutralFamily = RGB{R: 128, G: 128, B: 128}

// ApproximatePaint estimates a paint chip color from its code. The result is
// a best-effort guess and not a verified conversion. Codes that do not have
// the DDDD-NNL shape yield black.
func ApproximatePaint(code string) string {
	code = normalizeCode(code)
	if !FormatPaint.Matches(code) {
		return "#000000"
	}
	base, suffix := code[:4], code[5:]

	family, ok := paintFamilies[suffix[2]]
	if !ok {
		family = neutralFamily
	}

	n, _ := strconv.Atoi(suffix[:2])
	if n > 100 {
		n = 100
	}

	// the first base digit darkens the light end the chip fades toward
	level := 255 - int(base[0]-'0')*8
	target := RGB{R: level, G: level, B: level}.Hex()

	return BlendColors(family.Hex(), target, float64(n)/100)
}

// ApproximateAutoPaint derives a stable color from an automotive code by
// hashing it. Equal codes always give equal colors; the color carries no
// perceptual meaning.
func ApproximateAutoPaint(code string) string {
	code = normalizeCode(code)
	var h int32
	for i := 0; i < len(code); i++ {
		h = h*31 + int32(code[i])
	}
	u := uint32(h)
	return RGBToHex(float64(u%256), float64((u>>8)%256), float64((u>>16)%256))
}

// Package colorcode classifies color codes typed by users, converts them to
// canonical "#RRGGBB" hex and derives HSL, CMYK, names and harmonies.
//
// Every function in the package is pure. Converters never fail: malformed hex
// input degrades to black so they can run on live, half-typed input.
package colorcode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnrecognizedFormat is returned when a code matches no known format.
var ErrUnrecognizedFormat = errors.New("unrecognized color code format")

// FormatError reports the code that could not be classified.
type FormatError struct {
	Code string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnrecognizedFormat, e.Code)
}

func (e *FormatError) Unwrap() error {
	return ErrUnrecognizedFormat
}

// Conversion is the canonical result of converting a user supplied code.
type Conversion struct {
	Hex          string `json:"hex"`
	OriginalCode string `json:"originalCode"`
	Format       string `json:"format"`
	Name         string `json:"name"`
	// Approximated marks vendor codes that were missing from the table and
	// were estimated instead of looked up.
	Approximated bool `json:"approximated"`
}

// Engine converts codes using an ordered format list and a vendor table.
type Engine struct {
	formats []FormatSpec
	table   *Table
}

// NewEngine returns an engine backed by table. A nil table behaves as empty,
// so every vendor code is approximated.
func NewEngine(table *Table) *Engine {
	return &Engine{
		formats: Formats(),
		table:   table,
	}
}

// Table returns the vendor table the engine was built with.
func (e *Engine) Table() *Table {
	return e.table
}

// Classify is like the package level Classify but uses the engine's format list.
func (e *Engine) Classify(code string) (FormatSpec, bool) {
	for _, f := range e.formats {
		if f.Matches(code) {
			return f, true
		}
	}
	return FormatSpec{}, false
}

// Convert classifies code and resolves it to canonical hex.
func (e *Engine) Convert(code string) (Conversion, error) {
	original := strings.TrimSpace(code)
	normalized := normalizeCode(original)

	format, ok := e.Classify(normalized)
	if !ok {
		return Conversion{}, &FormatError{Code: original}
	}

	conv := Conversion{
		OriginalCode: original,
		Format:       format.Name,
	}

	switch format.Name {
	case FormatHex.Name:
		conv.Hex = FormatHex.Prefix + normalized
	default:
		if hex, found := e.table.Lookup(normalized); found {
			conv.Hex = hex
			break
		}
		conv.Approximated = true
		if format.Name == FormatPaint.Name {
			conv.Hex = ApproximatePaint(normalized)
		} else {
			conv.Hex = ApproximateAutoPaint(normalized)
		}
	}

	conv.Name = NameColor(conv.Hex)
	return conv, nil
}

// Preview converts code for live input feedback. Unrecognized codes give
// black and false instead of an error.
func (e *Engine) Preview(code string) (string, bool) {
	conv, err := e.Convert(code)
	if err != nil {
		return "#000000", false
	}
	return conv.Hex, true
}

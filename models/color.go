package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/color-collector/api/colorcode"
)

// Proximity is the user's subjective emotional closeness to a color.
type Proximity string

const (
	VeryClose   Proximity = "very-close"
	Close       Proximity = "close"
	Neutral     Proximity = "neutral"
	Distant     Proximity = "distant"
	VeryDistant Proximity = "very-distant"
)

// Proximities lists the scale from closest to most distant.
var Proximities = []Proximity{VeryClose, Close, Neutral, Distant, VeryDistant}

// ParseProximity validates a proximity value
func ParseProximity(s string) (Proximity, error) {
	p := Proximity(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid proximity %q", s)
	}
	return p, nil
}

func (p Proximity) Valid() bool {
	return p.Rank() > 0
}

// Rank returns 1 for very-close through 5 for very-distant, 0 if invalid
func (p Proximity) Rank() int {
	for i, v := range Proximities {
		if v == p {
			return i + 1
		}
	}
	return 0
}

// Location is where a color was collected
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	PlaceName string  `json:"placeName"`
}

var ErrInvalidLocation = errors.New("invalid location")

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLocation, l.Longitude)
	}
	if l.Accuracy < 0 {
		return fmt.Errorf("%w: negative accuracy", ErrInvalidLocation)
	}
	return nil
}

// ColorRecord is a collected color. Hex, OriginalCode, Format and Name are
// fixed at creation; only Proximity and Location may be attached later.
type ColorRecord struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"userId" db:"user_id"`
	Hex          string     `json:"hex" db:"hex"`
	OriginalCode string     `json:"originalCode" db:"original_code"`
	Format       string     `json:"format" db:"format"`
	Name         string     `json:"name" db:"name"`
	Approximated bool       `json:"approximated" db:"approximated"`
	Proximity    *Proximity `json:"proximity,omitempty" db:"proximity"`
	Location     *Location  `json:"location,omitempty"`
	DateAdded    time.Time  `json:"dateAdded" db:"date_added"`
}

// NewColorRecord builds a record for userID from a conversion result
func NewColorRecord(userID string, conv colorcode.Conversion) ColorRecord {
	return ColorRecord{
		ID:           uuid.New().String(),
		UserID:       userID,
		Hex:          conv.Hex,
		OriginalCode: conv.OriginalCode,
		Format:       conv.Format,
		Name:         conv.Name,
		Approximated: conv.Approximated,
		DateAdded:    time.Now(),
	}
}

// ConvertRequest is the body of POST /v1/colors/convert
type ConvertRequest struct {
	Code string `json:"code"`
}

type ConvertResponse struct {
	colorcode.Conversion
	Description colorcode.Description `json:"description"`
}

// AddColorRequest is the body of POST /v1/collection
type AddColorRequest struct {
	Code      string    `json:"code"`
	Proximity string    `json:"proximity,omitempty"`
	Location  *Location `json:"location,omitempty"`
}

type ProximityUpdateRequest struct {
	Proximity string `json:"proximity"`
}

type LocationUpdateRequest struct {
	Location
}

type BlendRequest struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
}

type BlendResponse struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

type HarmonyResponse struct {
	Base   string            `json:"base"`
	Type   colorcode.Harmony `json:"type"`
	Colors []string          `json:"colors"`
}

// CollectionStats summarizes a user's collection
type CollectionStats struct {
	Total        int               `json:"total"`
	Located      int               `json:"located"`
	Approximated int               `json:"approximated"`
	ByProximity  map[Proximity]int `json:"byProximity"`
	ByFamily     map[string]int    `json:"byFamily"`
}

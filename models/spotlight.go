package models

import (
	"time"

	"github.com/color-collector/api/colorcode"
)

// Spotlight is the collected color featured for a day
type Spotlight struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	ColorID   string    `json:"color_id"`
	Hex       string    `json:"hex"`
	ColorName string    `json:"color_name"`
	CreatedAt time.Time `json:"created_at"`
}

// SpotlightResponse is the simplified response for API endpoints
type SpotlightResponse struct {
	Date        string                `json:"date"`
	ColorName   string                `json:"color_name"`
	RGB         string                `json:"rgb"`
	Hex         string                `json:"hex"`
	Description colorcode.Description `json:"description"`
}

func (s Spotlight) Response() SpotlightResponse {
	return SpotlightResponse{
		Date:        s.Date.Format("2006-01-02"),
		ColorName:   s.ColorName,
		RGB:         colorcode.RGBString(s.Hex),
		Hex:         s.Hex,
		Description: colorcode.Describe(s.Hex),
	}
}

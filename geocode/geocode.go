// Package geocode resolves coordinates to place names through a
// Nominatim compatible reverse geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultURL is the public OpenStreetMap Nominatim instance.
const DefaultURL = "https://nominatim.openstreetmap.org"

// Resolver turns coordinates into a place.
type Resolver interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}

// Place is the subset of a reverse geocoding answer the collection keeps.
type Place struct {
	DisplayName string
	City        string
	Country     string
}

// Label renders a short place name, "City, Country" when both are known.
func (p Place) Label() string {
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	case p.DisplayName != "":
		return p.DisplayName
	}
	return p.Country
}

// StatusError is returned for non 200 answers.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder returned status: %d", e.StatusCode)
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Client talks to a reverse geocoding HTTP API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient returns a client for baseURL. Nominatim requires an identifying
// user agent.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Reverse looks up the place at lat/lng.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return Place{}, errors.Wrap(err, "building reverse geocode request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.WithFields(log.Fields{"lat": lat, "lng": lng}).Debug("reverse geocoding")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, errors.Wrap(err, "reverse geocode request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, errors.Wrap(err, "decoding reverse geocode response")
	}
	if body.Error != "" {
		return Place{}, errors.Errorf("geocoder: %s", body.Error)
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}

	return Place{
		DisplayName: body.DisplayName,
		City:        city,
		Country:     body.Address.Country,
	}, nil
}

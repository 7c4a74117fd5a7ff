package api

import (
	"github.com/color-collector/api/colorcode"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/geocode"
)

type Application struct {
	Config        Config
	Engine        *colorcode.Engine
	UserRepo      datastore.UserRepository
	ColorRepo     datastore.ColorRepository
	SpotlightRepo datastore.SpotlightRepository
	// Geocoder is optional; without it locations keep the client supplied name
	Geocoder geocode.Resolver
}

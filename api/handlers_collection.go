package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/color-collector/api/colorcode"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/models"
)

type collectionItemResponse struct {
	models.ColorRecord
	Description colorcode.Description `json:"description"`
}

// /v1/collection - GET lists, POST adds a color
func (app *Application) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listCollection(w, r)
	case http.MethodPost:
		app.addColor(w, r)
	default:
		app.requireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (app *Application) listCollection(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	view, err := models.ParseCollectionView(r.URL.Query().Get("view"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var records []models.ColorRecord
	switch view {
	case models.ViewTimeline:
		records, err = app.ColorRepo.ListByUser(user.UserID, datastore.OrderTimeline)
	case models.ViewMap:
		records, err = app.ColorRepo.ListLocated(user.UserID)
	default:
		records, err = app.ColorRepo.ListByUser(user.UserID, datastore.OrderNewest)
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if view == models.ViewSpectrum {
		models.SortSpectrum(records)
	}
	if records == nil {
		records = []models.ColorRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"view":   view,
		"colors": records,
	})
}

func (app *Application) addColor(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req models.AddColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	conv, err := app.Engine.Convert(req.Code)
	if err != nil {
		app.unrecognizedCode(w, r, err)
		return
	}

	record := models.NewColorRecord(user.UserID, conv)

	if req.Proximity != "" {
		proximity, err := models.ParseProximity(req.Proximity)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		record.Proximity = &proximity
	}

	if req.Location != nil {
		if err := req.Location.Validate(); err != nil {
			app.badRequest(w, r, err)
			return
		}
		loc := app.resolvePlace(r.Context(), *req.Location)
		record.Location = &loc
	}

	saved, err := app.ColorRepo.Create(record)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	log.WithFields(log.Fields{
		"user": user.UserID,
		"code": saved.OriginalCode,
		"hex":  saved.Hex,
	}).Info("color collected")
	writeJSON(w, http.StatusCreated, saved)
}

// GET /v1/collection/stats
func (app *Application) collectionStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user := userFromContext(r.Context())
	records, err := app.ColorRepo.ListByUser(user.UserID, datastore.OrderNewest)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.Summarize(records))
}

// /v1/collection/{id} - GET one color, DELETE it
func (app *Application) collectionItem(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		record, err := app.ColorRepo.Get(user.UserID, id)
		if err != nil {
			app.repoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collectionItemResponse{
			ColorRecord: record,
			Description: colorcode.Describe(record.Hex),
		})
	case http.MethodDelete:
		if err := app.ColorRepo.Delete(user.UserID, id); err != nil {
			app.repoError(w, r, err)
			return
		}
		log.WithFields(log.Fields{"user": user.UserID, "color": id}).Info("color removed")
		w.WriteHeader(http.StatusNoContent)
	default:
		app.requireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}

// PUT /v1/collection/{id}/proximity
func (app *Application) updateProximity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	var req models.ProximityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	proximity, err := models.ParseProximity(req.Proximity)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	record, err := app.ColorRepo.UpdateProximity(user.UserID, r.PathValue("id"), proximity)
	if err != nil {
		app.repoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// PUT /v1/collection/{id}/location
func (app *Application) updateLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	var req models.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := req.Location.Validate(); err != nil {
		app.badRequest(w, r, err)
		return
	}

	user := userFromContext(r.Context())
	loc := app.resolvePlace(r.Context(), req.Location)
	record, err := app.ColorRepo.UpdateLocation(user.UserID, r.PathValue("id"), loc)
	if err != nil {
		app.repoError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// resolvePlace fills in an empty place name from the geocoder. A failed
// lookup leaves the name empty.
func (app *Application) resolvePlace(ctx context.Context, loc models.Location) models.Location {
	if loc.PlaceName != "" || app.Geocoder == nil {
		return loc
	}

	place, err := app.Geocoder.Reverse(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		log.WithFields(log.Fields{
			"lat": loc.Latitude,
			"lng": loc.Longitude,
		}).Warnf("reverse geocoding failed: %v", err)
		return loc
	}

	loc.PlaceName = place.Label()
	return loc
}

func (app *Application) repoError(w http.ResponseWriter, r *http.Request, err error) {
	if datastore.IsNoRows(err) {
		app.notFound(w, r, errors.New("color not found in your collection"))
		return
	}
	app.internalServerError(w, r, err)
}

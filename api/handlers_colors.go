package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/color-collector/api/colorcode"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/models"
)

// POST /v1/colors/convert - Classify and convert a color code
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	conv, err := app.Engine.Convert(req.Code)
	if err != nil {
		app.unrecognizedCode(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ConvertResponse{
		Conversion:  conv,
		Description: colorcode.Describe(conv.Hex),
	})
}

func (app *Application) hexParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("hex")
	hex, ok := colorcode.NormalizeHex(raw)
	if !ok {
		app.badRequest(w, r, fmt.Errorf("hex must be a 6 digit hex color, got %q", raw))
		return "", false
	}
	return hex, true
}

// GET /v1/colors/inspect?hex=RRGGBB - Describe a hex color
func (app *Application) inspectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	hex, ok := app.hexParam(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, colorcode.Describe(hex))
}

// GET /v1/colors/preview?code= - Live swatch for partially typed input
func (app *Application) previewColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	hex, ok := app.Engine.Preview(r.URL.Query().Get("code"))
	writeJSON(w, http.StatusOK, map[string]any{
		"hex":        hex,
		"recognized": ok,
		"textColor":  colorcode.ContrastText(hex),
	})
}

// POST /v1/colors/blend - Mix two colors
func (app *Application) blendColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var req models.BlendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	a, okA := colorcode.NormalizeHex(req.A)
	b, okB := colorcode.NormalizeHex(req.B)
	if !okA || !okB {
		app.badRequest(w, r, errors.New("a and b must be 6 digit hex colors"))
		return
	}

	hex := colorcode.BlendColors(a, b, req.Ratio)
	writeJSON(w, http.StatusOK, models.BlendResponse{Hex: hex, Name: colorcode.NameColor(hex)})
}

// GET /v1/colors/harmony?hex=RRGGBB&type=triadic - Related colors
func (app *Application) colorHarmony(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	hex, ok := app.hexParam(w, r)
	if !ok {
		return
	}

	kind := r.URL.Query().Get("type")
	if kind == "" {
		writeJSON(w, http.StatusOK, colorcode.AllHarmonies(hex))
		return
	}

	harmony, err := colorcode.ParseHarmony(kind)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.HarmonyResponse{
		Base:   hex,
		Type:   harmony,
		Colors: colorcode.Harmonize(hex, harmony),
	})
}

type formatInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Prefix  string `json:"prefix,omitempty"`
}

// GET /v1/colors/formats - Accepted code formats in classification order
func (app *Application) listFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	var out []formatInfo
	for _, f := range colorcode.Formats() {
		out = append(out, formatInfo{Name: f.Name, Pattern: f.Pattern.String(), Prefix: f.Prefix})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"formats":     out,
		"vendorCodes": app.Engine.Table().Len(),
	})
}

// GET /v1/spotlight - Today's featured color
func (app *Application) getSpotlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	spotlight, err := app.SpotlightRepo.GetToday()
	if err != nil {
		if datastore.IsNoRows(err) {
			app.notFound(w, r, errors.New("no spotlight color for today yet"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, spotlight.Response())
}

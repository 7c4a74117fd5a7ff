package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/color-collector/api/colorcode"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/geocode"
	"github.com/color-collector/api/models"
)

type fakeResolver struct {
	place geocode.Place
	err   error
	calls int
}

func (f *fakeResolver) Reverse(ctx context.Context, lat, lng float64) (geocode.Place, error) {
	f.calls++
	return f.place, f.err
}

func newTestApp() *Application {
	return &Application{
		Config: Config{
			JwtSecret:         "test-secret",
			JwtAccessDuration: 3600,
			AllowedOrigins:    []string{"https://colors.example.com"},
		},
		Engine:        colorcode.NewEngine(colorcode.DefaultTable()),
		UserRepo:      datastore.NewMemoryUserStore(),
		ColorRepo:     datastore.NewMemoryColorStore(),
		SpotlightRepo: datastore.NewMemorySpotlightStore(),
	}
}

func do(t *testing.T, h http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// signupAndLogin registers a user and returns its access cookie
func signupAndLogin(t *testing.T, h http.Handler, username string) *http.Cookie {
	t.Helper()
	email := username + "@example.com"
	rec := do(t, h, http.MethodPost, "/v1/auth/signup", models.UserSignupRequest{
		Username: username,
		Email:    email,
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/v1/auth/login", models.Credentials{Email: email, Password: "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == models.AccessCookieName {
			return c
		}
	}
	t.Fatal("login did not set an access cookie")
	return nil
}

func TestHome(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Color Collection API", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConvertColor(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodPost, "/v1/colors/convert", models.ConvertRequest{Code: "ff0000"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[models.ConvertResponse](t, rec)
	assert.Equal(t, "#FF0000", resp.Hex)
	assert.Equal(t, "ff0000", resp.OriginalCode)
	assert.Equal(t, "hex", resp.Format)
	assert.Equal(t, "Vivid Red", resp.Name)
	assert.False(t, resp.Approximated)
	assert.Equal(t, []string{"#26D9D9"}, resp.Description.Harmonies[colorcode.Complementary])
	assert.Equal(t, "warm", resp.Description.Temperature)
}

func TestConvertColorVendorCodes(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	tests := []struct {
		code         string
		hex          string
		format       string
		approximated bool
	}{
		{code: "8002-45C", hex: "#92B2D1", format: "paint"},
		{code: "9999-99Z", hex: "#B6B6B6", format: "paint", approximated: true},
		{code: "NH731P", hex: "#111111", format: "auto-paint"},
		{code: "ZZZ", hex: "#1A5D01", format: "auto-paint", approximated: true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/colors/convert", models.ConvertRequest{Code: tt.code})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			resp := decode[models.ConvertResponse](t, rec)
			assert.Equal(t, tt.hex, resp.Hex)
			assert.Equal(t, tt.format, resp.Format)
			assert.Equal(t, tt.approximated, resp.Approximated)
		})
	}
}

func TestConvertColorErrors(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodPost, "/v1/colors/convert", models.ConvertRequest{Code: "not a color"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	herr := decode[HandlerError](t, rec)
	assert.Equal(t, "Unrecognized Color Code", herr.ErrorName)

	rec = do(t, h, http.MethodGet, "/v1/colors/convert", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))

	req := httptest.NewRequest(http.MethodPost, "/v1/colors/convert", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInspectColor(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodGet, "/v1/colors/inspect?hex=ff8000", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	desc := decode[colorcode.Description](t, rec)
	assert.Equal(t, "#FF8000", desc.Hex)
	assert.Equal(t, colorcode.CMYK{C: 0, M: 50, Y: 100, K: 0}, desc.CMYK)
	assert.Equal(t, "Vivid Orange", desc.Name)

	rec = do(t, h, http.MethodGet, "/v1/colors/inspect?hex=%23ff8000", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/colors/inspect?hex=fff", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewColor(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	type preview struct {
		Hex        string `json:"hex"`
		Recognized bool   `json:"recognized"`
		TextColor  string `json:"textColor"`
	}

	rec := do(t, h, http.MethodGet, "/v1/colors/preview?code=NH731P", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, preview{Hex: "#111111", Recognized: true, TextColor: "#FFFFFF"}, decode[preview](t, rec))

	rec = do(t, h, http.MethodGet, "/v1/colors/preview?code=80", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, preview{Hex: "#000000", Recognized: false, TextColor: "#FFFFFF"}, decode[preview](t, rec))
}

func TestBlendColors(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodPost, "/v1/colors/blend", models.BlendRequest{A: "#000000", B: "#FFFFFF", Ratio: 0.5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "#808080", decode[models.BlendResponse](t, rec).Hex)

	rec = do(t, h, http.MethodPost, "/v1/colors/blend", models.BlendRequest{A: "nope", B: "#FFFFFF"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestColorHarmony(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodGet, "/v1/colors/harmony?hex=FF0000&type=triadic", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.HarmonyResponse](t, rec)
	want := models.HarmonyResponse{
		Base:   "#FF0000",
		Type:   colorcode.Triadic,
		Colors: colorcode.TriadicOf("#FF0000"),
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("harmony mismatch (-want +got):\n%s", diff)
	}

	rec = do(t, h, http.MethodGet, "/v1/colors/harmony?hex=FF0000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[colorcode.Harmony][]string](t, rec)
	assert.Len(t, all, len(colorcode.Harmonies))

	rec = do(t, h, http.MethodGet, "/v1/colors/harmony?hex=FF0000&type=clashing", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFormats(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodGet, "/v1/colors/formats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Formats     []formatInfo `json:"formats"`
		VendorCodes int          `json:"vendorCodes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Formats, 3)
	assert.Equal(t, "hex", resp.Formats[0].Name)
	assert.Equal(t, colorcode.DefaultTable().Len(), resp.VendorCodes)
}

func TestSpotlight(t *testing.T) {
	app := newTestApp()
	h := app.BuildRoutes(http.NewServeMux())

	rec := do(t, h, http.MethodGet, "/v1/spotlight", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err := app.SpotlightRepo.Create(models.Spotlight{
		Date:      datastore.StartOfDay(time.Now()),
		ColorID:   "c1",
		Hex:       "#FF0000",
		ColorName: "Vivid Red",
	})
	require.NoError(t, err)

	rec = do(t, h, http.MethodGet, "/v1/spotlight", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.SpotlightResponse](t, rec)
	assert.Equal(t, "rgb(255,0,0)", resp.RGB)
	assert.Equal(t, "Vivid Red", resp.Description.Name)
}

func TestSignupValidation(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	signupAndLogin(t, h, "ada")

	tests := []struct {
		name string
		req  models.UserSignupRequest
		code int
	}{
		{name: "missing username", req: models.UserSignupRequest{Email: "x@example.com", Password: "long-enough"}, code: http.StatusBadRequest},
		{name: "space in username", req: models.UserSignupRequest{Username: "a b", Email: "x@example.com", Password: "long-enough"}, code: http.StatusBadRequest},
		{name: "bad email", req: models.UserSignupRequest{Username: "x", Email: "x", Password: "long-enough"}, code: http.StatusBadRequest},
		{name: "short password", req: models.UserSignupRequest{Username: "x", Email: "x@example.com", Password: "short"}, code: http.StatusBadRequest},
		{name: "duplicate email", req: models.UserSignupRequest{Username: "other", Email: "ada@example.com", Password: "long-enough"}, code: http.StatusConflict},
		{name: "duplicate username", req: models.UserSignupRequest{Username: "ada", Email: "new@example.com", Password: "long-enough"}, code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/auth/signup", tt.req)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestLoginAndCurrentUser(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	rec := do(t, h, http.MethodGet, "/v1/users/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decode[models.User](t, rec)
	assert.Equal(t, "ada", user.Username)
	assert.NotContains(t, rec.Body.String(), "correct-horse")

	rec = do(t, h, http.MethodPost, "/v1/auth/login", models.Credentials{Email: "ada@example.com", Password: "wrong-horse"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
}

func TestCollectionRequiresAuth(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	for _, path := range []string{"/v1/users/me", "/v1/collection", "/v1/collection/stats", "/v1/collection/abc"} {
		rec := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	bad := &http.Cookie{Name: models.AccessCookieName, Value: "garbage"}
	rec := do(t, h, http.MethodGet, "/v1/collection", nil, bad)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func addColor(t *testing.T, h http.Handler, cookie *http.Cookie, req models.AddColorRequest) models.ColorRecord {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/v1/collection", req, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.ColorRecord](t, rec)
}

type listResponse struct {
	View   models.CollectionView `json:"view"`
	Colors []models.ColorRecord  `json:"colors"`
}

func hexes(records []models.ColorRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Hex
	}
	return out
}

func TestCollectionLifecycle(t *testing.T) {
	app := newTestApp()
	h := app.BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	record := addColor(t, h, cookie, models.AddColorRequest{Code: "#ff0000", Proximity: "close"})
	assert.Equal(t, "#FF0000", record.Hex)
	assert.Equal(t, "#ff0000", record.OriginalCode)
	require.NotNil(t, record.Proximity)
	assert.Equal(t, models.Close, *record.Proximity)
	assert.Nil(t, record.Location)

	rec := do(t, h, http.MethodGet, "/v1/collection/"+record.ID, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	item := decode[collectionItemResponse](t, rec)
	assert.Equal(t, record.ID, item.ID)
	assert.Equal(t, "Vivid Red", item.Description.Name)

	rec = do(t, h, http.MethodPut, "/v1/collection/"+record.ID+"/proximity", models.ProximityUpdateRequest{Proximity: "very-distant"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.ColorRecord](t, rec)
	assert.Equal(t, models.VeryDistant, *updated.Proximity)
	assert.Equal(t, record.Hex, updated.Hex)
	assert.Equal(t, record.Name, updated.Name)

	rec = do(t, h, http.MethodPut, "/v1/collection/"+record.ID+"/proximity", models.ProximityUpdateRequest{Proximity: "adjacent"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/v1/collection/"+record.ID+"/location",
		models.LocationUpdateRequest{Location: models.Location{Latitude: 91}}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/collection/"+record.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/collection/"+record.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/collection/"+record.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCollectionRejectsBadInput(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	rec := do(t, h, http.MethodPost, "/v1/collection", models.AddColorRequest{Code: "???"}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/collection", models.AddColorRequest{Code: "FF0000", Proximity: "far"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/collection", models.AddColorRequest{
		Code:     "FF0000",
		Location: &models.Location{Latitude: 10, Longitude: 200},
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/collection?view=carousel", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/v1/collection", nil, cookie)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestCollectionIsPerUser(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	ada := signupAndLogin(t, h, "ada")
	grace := signupAndLogin(t, h, "grace")

	record := addColor(t, h, ada, models.AddColorRequest{Code: "00FF00"})

	rec := do(t, h, http.MethodGet, "/v1/collection/"+record.ID, nil, grace)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/collection/"+record.ID, nil, grace)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/collection", nil, grace)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[listResponse](t, rec).Colors)
}

func TestCollectionViews(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	addColor(t, h, cookie, models.AddColorRequest{Code: "0000FF"})
	addColor(t, h, cookie, models.AddColorRequest{Code: "808080"})
	addColor(t, h, cookie, models.AddColorRequest{
		Code:     "FF0000",
		Location: &models.Location{Latitude: 59.91, Longitude: 10.75, PlaceName: "Oslo, Norway"},
	})
	addColor(t, h, cookie, models.AddColorRequest{Code: "00FF00"})

	tests := []struct {
		view string
		want []string
	}{
		{view: "timeline", want: []string{"#0000FF", "#808080", "#FF0000", "#00FF00"}},
		{view: "grid", want: []string{"#00FF00", "#FF0000", "#808080", "#0000FF"}},
		{view: "spectrum", want: []string{"#FF0000", "#00FF00", "#0000FF", "#808080"}},
		{view: "map", want: []string{"#FF0000"}},
	}
	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/v1/collection?view="+tt.view, nil, cookie)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			resp := decode[listResponse](t, rec)
			assert.Equal(t, models.CollectionView(tt.view), resp.View)
			if diff := cmp.Diff(tt.want, hexes(resp.Colors)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectionStats(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	addColor(t, h, cookie, models.AddColorRequest{Code: "FF0000", Proximity: "close"})
	addColor(t, h, cookie, models.AddColorRequest{Code: "9999-99Z", Proximity: "close"})
	addColor(t, h, cookie, models.AddColorRequest{
		Code:     "0000FF",
		Location: &models.Location{Latitude: 1, Longitude: 1, PlaceName: "Somewhere"},
	})

	rec := do(t, h, http.MethodGet, "/v1/collection/stats", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	want := models.CollectionStats{
		Total:        3,
		Located:      1,
		Approximated: 1,
		ByProximity:  map[models.Proximity]int{models.Close: 2},
		ByFamily:     map[string]int{"Red": 1, "Gray": 1, "Blue": 1},
	}
	if diff := cmp.Diff(want, decode[models.CollectionStats](t, rec)); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestAddColorGeocodesLocation(t *testing.T) {
	app := newTestApp()
	resolver := &fakeResolver{place: geocode.Place{City: "Lisbon", Country: "Portugal"}}
	app.Geocoder = resolver
	h := app.BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	record := addColor(t, h, cookie, models.AddColorRequest{
		Code:     "FF0000",
		Location: &models.Location{Latitude: 38.72, Longitude: -9.14, Accuracy: 12},
	})
	require.NotNil(t, record.Location)
	assert.Equal(t, "Lisbon, Portugal", record.Location.PlaceName)
	assert.Equal(t, 1, resolver.calls)

	// a supplied name is kept as is
	record = addColor(t, h, cookie, models.AddColorRequest{
		Code:     "00FF00",
		Location: &models.Location{Latitude: 38.72, Longitude: -9.14, PlaceName: "Home"},
	})
	assert.Equal(t, "Home", record.Location.PlaceName)
	assert.Equal(t, 1, resolver.calls)
}

func TestUpdateLocationSurvivesGeocoderFailure(t *testing.T) {
	app := newTestApp()
	app.Geocoder = &fakeResolver{err: errors.New("geocoder down")}
	h := app.BuildRoutes(http.NewServeMux())
	cookie := signupAndLogin(t, h, "ada")

	record := addColor(t, h, cookie, models.AddColorRequest{Code: "FF0000"})

	rec := do(t, h, http.MethodPut, "/v1/collection/"+record.ID+"/location",
		models.LocationUpdateRequest{Location: models.Location{Latitude: 35.68, Longitude: 139.69, Accuracy: 5}}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[models.ColorRecord](t, rec)
	want := &models.Location{Latitude: 35.68, Longitude: 139.69, Accuracy: 5}
	if diff := cmp.Diff(want, updated.Location); diff != "" {
		t.Errorf("location mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#FF0000", updated.Hex)
}

func TestOriginCheck(t *testing.T) {
	h := newTestApp().BuildRoutes(http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://colors.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://colors.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/colors/convert", nil)
	req.Header.Set("Origin", "https://colors.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://colors.example.com", "http://localhost:3000"}
	tests := []struct {
		origin  string
		devMode bool
		want    bool
	}{
		{origin: "https://colors.example.com", want: true},
		{origin: "https://colors.example.com/some/page", want: true},
		{origin: "http://colors.example.com", want: true},
		{origin: "https://other.example.com", want: false},
		{origin: "http://localhost:3000", want: true},
		{origin: "http://localhost:9999", want: false},
		{origin: "http://localhost:9999", devMode: true, want: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isAllowedOrigin(tt.origin, allowed, tt.devMode), "%s dev=%v", tt.origin, tt.devMode)
	}
}

package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	// Public endpoints
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/auth/signup", app.signup)
	mux.HandleFunc("/v1/auth/login", app.login)
	mux.HandleFunc("/v1/auth/logout", app.logout)
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/inspect", app.inspectColor)
	mux.HandleFunc("/v1/colors/preview", app.previewColor)
	mux.HandleFunc("/v1/colors/blend", app.blendColors)
	mux.HandleFunc("/v1/colors/harmony", app.colorHarmony)
	mux.HandleFunc("/v1/colors/formats", app.listFormats)
	mux.HandleFunc("/v1/spotlight", app.getSpotlight)

	// Authenticated endpoints
	mux.HandleFunc("/v1/users/me", app.authenticate(app.getCurrentUser))
	mux.HandleFunc("/v1/collection", app.authenticate(app.collection))
	mux.HandleFunc("/v1/collection/stats", app.authenticate(app.collectionStats))
	mux.HandleFunc("/v1/collection/{id}", app.authenticate(app.collectionItem))
	mux.HandleFunc("/v1/collection/{id}/proximity", app.authenticate(app.updateProximity))
	mux.HandleFunc("/v1/collection/{id}/location", app.authenticate(app.updateLocation))

	// Wrap entire mux with CORS and origins check
	return wrapMuxWithCorsAndOrigins(mux, app)
}

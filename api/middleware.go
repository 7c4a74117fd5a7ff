package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/color-collector/api/models"
)

type contextKey string

const userContextKey = contextKey("user")

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// getUserFromJWT attempts to get user from JWT access token cookie
func (app *Application) getUserFromJWT(r *http.Request) (models.User, error) {
	cookie, err := r.Cookie(models.AccessCookieName)
	if err != nil {
		return models.User{}, errors.New("no JWT cookie found")
	}

	claims, err := models.ValidateJWTToken(cookie.Value, app.Config.JwtSecret)
	if err != nil {
		return models.User{}, err
	}

	return app.UserRepo.Get(claims.UserID)
}

// authenticate that the user exists and pass it on in the request context
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := app.getUserFromJWT(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		h.ServeHTTP(w, r.WithContext(ctx))
	}
}

func userFromContext(ctx context.Context) models.User {
	user, _ := ctx.Value(userContextKey).(models.User)
	return user
}

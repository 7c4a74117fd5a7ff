package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/color-collector/api/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Collection API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(userSignup); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}
	if strings.ContainsRune(userSignup.Username, ' ') {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}
	if !strings.Contains(userSignup.Email, "@") {
		app.badRequest(w, r, errors.New("a valid email is required"))
		return
	}
	if len(userSignup.Password) < 8 {
		app.badRequest(w, r, errors.New("password must be at least 8 characters"))
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(userSignup.Email); err == nil {
		app.userAlreadyExists(w, r, err)
		return
	}

	if _, err := app.UserRepo.GetUserByUsername(userSignup.Username); err == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	newUser, err := models.NewUser(*userSignup)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	storedUser, err := app.UserRepo.Create(newUser)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	log.WithField("user", storedUser.UserID).Info("user signed up")
	writeJSON(w, http.StatusOK, storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, errors.New("invalid email or password"))
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessToken, err := models.NewAccessToken(user, app.Config.JwtSecret, accessExpiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, app.accessCookie(accessToken, accessExpiry))
	writeJSON(w, http.StatusOK, user)
}

// POST /v1/auth/logout
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}
	cookie := app.accessCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) accessCookie(value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     models.AccessCookieName,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expires,
	}
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	writeJSON(w, http.StatusOK, userFromContext(r.Context()))
}

package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wadjakorntonsri/go-job-board/pkg/config"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	sessionTTL      = 24 * time.Hour
	oauthStateName  = "oauthstate"
	googleUserInfo  = "https://www.googleapis.com/oauth2/v2/userinfo"
	adminLandingURI = "/admin"
)

type AuthHandler struct {
	oauthConfig   *oauth2.Config
	jwtSecret     []byte
	username      string
	password      string
	frontendURL   string
	allowedEmails []string
	isProduction  bool
}

type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		jwtSecret:     []byte(cfg.JWTSecret),
		username:      cfg.AdminUsername,
		password:      cfg.AdminPassword,
		frontendURL:   cfg.FrontendURL,
		allowedEmails: cfg.AllowedEmails,
		isProduction:  cfg.IsProduction(),
	}
}

// Login checks the configured admin credentials and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.password == "" {
		writeMessage(w, http.StatusForbidden, "Admin login is disabled.")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		logging.FromContext(r.Context()).WithField("username", req.Username).Warn("admin login rejected")
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, expires, err := h.issueToken(req.Username)
	if err != nil {
		logging.FromContext(r.Context()).WithError(err).Error("sign admin token")
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	h.setSessionCookie(w, token, expires)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expires})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.setSessionCookie(w, "", time.Now().Add(-1*time.Hour))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := h.generateStateOauthCookie(w)
	url := h.oauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback signs in allow-listed admins. An empty allowlist admits nobody.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	oauthState, err := r.Cookie(oauthStateName)
	if err != nil || r.FormValue("state") != oauthState.Value {
		log.Warn("google callback: invalid oauth state")
		writeMessage(w, http.StatusBadRequest, "Invalid OAuth state.")
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		log.WithError(err).Warn("google callback: code exchange failed")
		writeMessage(w, http.StatusUnauthorized, "Code exchange failed.")
		return
	}

	response, err := h.oauthConfig.Client(r.Context(), token).Get(googleUserInfo)
	if err != nil {
		log.WithError(err).Error("google callback: failed getting user info")
		writeMessage(w, http.StatusBadGateway, "Failed getting user info.")
		return
	}
	defer response.Body.Close()

	var googleUser GoogleUser
	if err := json.NewDecoder(response.Body).Decode(&googleUser); err != nil {
		log.WithError(err).Error("google callback: failed decoding user info")
		writeMessage(w, http.StatusBadGateway, "Failed getting user info.")
		return
	}

	if !googleUser.VerifiedEmail || !slices.Contains(h.allowedEmails, googleUser.Email) {
		log.WithField("email", googleUser.Email).Warn("google callback: email not in allowlist")
		writeMessage(w, http.StatusForbidden, "Access denied.")
		return
	}

	jwtToken, expires, err := h.issueToken(googleUser.Email)
	if err != nil {
		log.WithError(err).Error("google callback: failed signing JWT")
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	h.setSessionCookie(w, jwtToken, expires)
	log.WithField("email", googleUser.Email).Info("admin login via google")
	http.Redirect(w, r, h.frontendURL+adminLandingURI, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) issueToken(subject string) (string, time.Time, error) {
	expirationTime := time.Now().Add(sessionTTL)
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	return signed, expirationTime, err
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) generateStateOauthCookie(w http.ResponseWriter) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateName,
		Value:    state,
		Expires:  time.Now().Add(20 * time.Minute),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

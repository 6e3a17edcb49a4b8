// Package auth delegates sign-in to Google via the standard redirect flow
// and keeps the resulting session snapshot in a signed cookie. Nothing else
// in the application inspects credentials; consumers only see Session.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	sessionCookie = "ctk_session"
	stateCookie   = "ctk_oauth_state"
	userinfoURL   = "https://openidconnect.googleapis.com/v1/userinfo"

	sessionTTL = 7 * 24 * time.Hour
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Session is the opaque "who is signed in" snapshot pages render with.
type Session struct {
	SignedIn  bool   `json:"signedIn"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Service struct {
	oauth       *oauth2.Config
	secret      []byte
	enabled     bool
	userinfoURL string
}

func NewService(cfg Config, secret []byte) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		secret:      secret,
		enabled:     cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RedirectURL != "",
		userinfoURL: userinfoURL,
	}
}

// Enabled reports whether the Google credentials are configured.
func (s *Service) Enabled() bool { return s.enabled }

func (s *Service) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.enabled {
		http.Error(w, "google oauth not configured", http.StatusServiceUnavailable)
		return
	}

	state := randomToken(16)
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})
	http.Redirect(w, r, s.oauth.AuthCodeURL(state), http.StatusFound)
}

func (s *Service) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if !s.enabled {
		http.Error(w, "google oauth not configured", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	if errStr := q.Get("error"); errStr != "" {
		http.Error(w, "google error: "+errStr, http.StatusBadRequest)
		return
	}
	code := q.Get("code")
	if code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}
	if c, err := r.Cookie(stateCookie); err != nil || c.Value == "" || c.Value != q.Get("state") {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}

	token, err := s.oauth.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "google token exchange failed", http.StatusBadGateway)
		return
	}

	info, err := s.fetchUserinfo(r, token)
	if err != nil {
		http.Error(w, "google userinfo failed", http.StatusBadGateway)
		return
	}

	signed, err := s.issueToken(info.Name, info.Email, info.Picture)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Service) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// Session reads the snapshot from the request cookie. Any missing, expired
// or tampered token is simply a signed-out session.
func (s *Service) Session(r *http.Request) Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return Session{}
	}
	claims, err := s.parseToken(c.Value)
	if err != nil {
		return Session{}
	}
	return Session{
		SignedIn:  true,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.Picture,
	}
}

type googleUserinfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (s *Service) fetchUserinfo(r *http.Request, token *oauth2.Token) (*googleUserinfo, error) {
	client := s.oauth.Client(r.Context(), token)
	resp, err := client.Get(s.userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// should never really happen
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

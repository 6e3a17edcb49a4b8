package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledService(secret string) *Service {
	return NewService(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/auth/google/callback",
	}, []byte(secret))
}

func TestTokenRoundTrip(t *testing.T) {
	s := enabledService("test-secret")

	raw, err := s.issueToken("Nikaum", "nikaum@example.com", "http://avatar")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := s.parseToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "Nikaum", claims.Name)
	assert.Equal(t, "nikaum@example.com", claims.Email)
	assert.Equal(t, "http://avatar", claims.Picture)
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw, err := enabledService("secret-a").issueToken("n", "e@x.com", "")
	require.NoError(t, err)

	_, err = enabledService("secret-b").parseToken(raw)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	s := enabledService("test-secret")

	claims := &sessionClaims{
		Name:  "n",
		Email: "e@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.parseToken(raw)
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	s := enabledService("test-secret")

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, Session{}, s.Session(req))
	})

	t.Run("valid cookie", func(t *testing.T) {
		raw, err := s.issueToken("Nikaum", "nikaum@example.com", "http://avatar")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: raw})

		sess := s.Session(req)
		assert.True(t, sess.SignedIn)
		assert.Equal(t, "Nikaum", sess.Name)
		assert.Equal(t, "http://avatar", sess.AvatarURL)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "garbage"})
		assert.False(t, s.Session(req).SignedIn)
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		s := NewService(Config{}, []byte("secret"))
		rr := httptest.NewRecorder()
		s.HandleLogin(rr, httptest.NewRequest("GET", "/auth/google/login", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("redirects to google with state", func(t *testing.T) {
		s := enabledService("secret")
		rr := httptest.NewRecorder()
		s.HandleLogin(rr, httptest.NewRequest("GET", "/auth/google/login", nil))

		require.Equal(t, http.StatusFound, rr.Code)
		loc := rr.Header().Get("Location")
		assert.Contains(t, loc, "accounts.google.com")
		assert.Contains(t, loc, "state=")

		var state string
		for _, c := range rr.Result().Cookies() {
			if c.Name == stateCookie {
				state = c.Value
			}
		}
		require.NotEmpty(t, state)
		assert.Contains(t, loc, "state="+state)
	})
}

func TestHandleCallback_Validation(t *testing.T) {
	s := enabledService("secret")

	tests := []struct {
		name     string
		target   string
		cookie   string
		wantCode int
	}{
		{"provider error", "/cb?error=access_denied", "", http.StatusBadRequest},
		{"missing code", "/cb", "", http.StatusBadRequest},
		{"missing state cookie", "/cb?code=abc&state=xyz", "", http.StatusBadRequest},
		{"state mismatch", "/cb?code=abc&state=xyz", "other", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			s.HandleCallback(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestHandleLogout(t *testing.T) {
	s := enabledService("secret")
	rr := httptest.NewRecorder()
	s.HandleLogout(rr, httptest.NewRequest("GET", "/logout", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	var cleared bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must clear the session cookie")
}

func TestRandomToken(t *testing.T) {
	a := randomToken(16)
	b := randomToken(16)
	assert.Len(t, a, 32) // hex encoded
	assert.NotEqual(t, a, b)
	assert.False(t, strings.Contains(a, " "))
}

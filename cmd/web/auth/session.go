package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName = "typeset_viewer"
	ViewerIDKey = "viewer_id"
)

var (
	ErrNoViewer = errors.New("no viewer session")
)

// SessionManager issues the viewer cookie that ties mounted views to the
// browser that created them. It carries no style state.
type SessionManager struct {
	store *sessions.CookieStore
}

// randRead is swapped in tests.
var randRead = rand.Read

// NewSessionManager signs viewer cookies with secret. An empty secret gets a
// random one, so cookies do not survive a restart.
func NewSessionManager(secret string) (*SessionManager, error) {
	if secret == "" {
		generated, err := generateSecret()
		if err != nil {
			return nil, err
		}
		slog.Warn("SESSION_SECRET not set, using a random secret")
		secret = generated
	}
	return &SessionManager{
		store: sessions.NewCookieStore([]byte(secret)),
	}, nil
}

func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// EnsureViewer returns the viewer id from the cookie, issuing a new one when
// the cookie is missing or unreadable.
func (sm *SessionManager) EnsureViewer(w http.ResponseWriter, r *http.Request) (string, error) {
	if id, err := sm.GetViewer(r); err == nil {
		return id, nil
	}

	session, _ := sm.store.New(r, SessionName)
	id := uuid.NewString()
	session.Values[ViewerIDKey] = id

	// Determine if we're on HTTPS
	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"

	// Browser-session cookie: gone when the browser closes.
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}

	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// GetViewer reads the viewer id from the cookie.
func (sm *SessionManager) GetViewer(r *http.Request) (string, error) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode viewer session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return "", err
	}

	val, ok := session.Values[ViewerIDKey]
	if !ok {
		return "", ErrNoViewer
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", ErrNoViewer
	}
	return id, nil
}

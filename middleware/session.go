package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/logger"
	"github.com/dmitrymomot/keywork/core/response"
)

// SessionKey is the event data key holding the current Session.
const SessionKey = "keywork.session"

// ErrSessionNotFound is returned by stores for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session identifies the browser session of a request.
type Session struct {
	ID string
	// IsNew is true when the session was created by this request and the
	// Set-Cookie header is being sent.
	IsNew bool
}

// SessionStore persists session IDs with an expiry.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Touch reports whether the session exists and extends its lifetime.
	Touch(ctx context.Context, id string, ttl time.Duration) (bool, error)
	// Create stores a new session.
	Create(ctx context.Context, id string, ttl time.Duration) error
}

// SessionConfig configures the session middleware. Store is required. The
// tagged cookie fields can be loaded with config.Load.
type SessionConfig struct {
	Store    SessionStore
	Logger   *slog.Logger
	Now      func() time.Time
	SameSite http.SameSite

	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"keywork_session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	Path       string        `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	Domain     string        `env:"SESSION_COOKIE_DOMAIN"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
}

// Sessions creates a session middleware backed by store with default settings.
func Sessions[E any](store SessionStore) handler.HandlerFunc[E] {
	return SessionsWithConfig[E](SessionConfig{Store: store, Secure: true})
}

// SessionsWithConfig creates a session middleware. Every request gets a
// Session in the event data. Unknown or missing cookies start a new session
// and the response carries a Set-Cookie header for it. Store failures are
// logged and the request continues with a fresh session.
func SessionsWithConfig[E any](cfg SessionConfig) handler.HandlerFunc[E] {
	if cfg.Store == nil {
		panic("session middleware: store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "keywork_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	if cfg.SameSite == 0 {
		cfg.SameSite = http.SameSiteLaxMode
	}

	return func(ev *handler.Event[E], next handler.Next) any {
		ctx := ev.Context()
		sess := Session{}

		if c, err := ev.Request.Cookie(cfg.CookieName); err == nil && validSessionID(c.Value) {
			ok, err := cfg.Store.Touch(ctx, c.Value, cfg.TTL)
			if err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to load session",
					logger.Component("session"),
					logger.SessionID(c.Value),
					logger.Error(err),
				)
			}
			if ok {
				sess.ID = c.Value
			}
		}

		if sess.ID == "" {
			sess = Session{ID: uuid.NewString(), IsNew: true}
			if err := cfg.Store.Create(ctx, sess.ID, cfg.TTL); err != nil {
				cfg.Logger.ErrorContext(ctx, "failed to create session",
					logger.Component("session"),
					logger.SessionID(sess.ID),
					logger.Error(err),
				)
			}
		}

		ev.Set(SessionKey, sess)

		resp := next()
		if !sess.IsNew {
			return resp
		}

		return response.WithCookie(resp, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    sess.ID,
			Path:     cfg.Path,
			Domain:   cfg.Domain,
			Expires:  cfg.Now().Add(cfg.TTL),
			MaxAge:   int(cfg.TTL.Seconds()),
			Secure:   cfg.Secure,
			HttpOnly: true,
			SameSite: cfg.SameSite,
		})
	}
}

// GetSession returns the session stored by the middleware.
func GetSession[E any](ev *handler.Event[E]) (Session, bool) {
	return handler.Value[Session](ev, SessionKey)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

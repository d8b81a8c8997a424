// Package middleware provides various middleware functionality.
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/service/secretary"
)

type contextKey string

// UserIDKey is the request context key holding the authenticated user ID.
const UserIDKey contextKey = "userID"

// CookieHandler sets object structure.
type CookieHandler struct {
	sec secretary.Secretary
	cfg *config.Config
}

// NewCookieHandler initializes a new cookie handler.
func NewCookieHandler(sec secretary.Secretary, cfg *config.Config) (*CookieHandler, error) {
	if sec == nil {
		return nil, errors.New("nil Secretary was passed to cookie handler initializer")
	}
	return &CookieHandler{
		sec: sec,
		cfg: cfg,
	}, nil
}

// CookieHandle issues a signed user cookie to new clients and rejects forged ones. The user ID
// is stored in the request context under UserIDKey.
func (c *CookieHandler) CookieHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var userID string
		cookie, err := r.Cookie(c.cfg.AuthKey)
		if errors.Is(err, http.ErrNoCookie) {
			userID = uuid.New().String()
			newCookie := &http.Cookie{
				Name:     c.cfg.AuthKey,
				Value:    c.sec.Encode(userID),
				Path:     "/",
				HttpOnly: true,
			}
			http.SetCookie(w, newCookie)
		} else {
			userID, err = c.sec.Decode(cookie.Value)
			if err != nil {
				log.Println("CookieHandle:", err)
				http.Error(w, "invalid user cookie", http.StatusUnauthorized)
				return
			}
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the user ID placed into ctx by CookieHandle.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

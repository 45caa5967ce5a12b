package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const CtxProfileID ctxKey = "profile_id"

const profileCookie = "profile"

// Profile identifies the browser profile owning the favorites set. A valid
// profile cookie is passed through; anything else gets a fresh UUID. There
// is no account behind this; it only scopes client-local state.
func Profile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID := ""
		if c, err := r.Cookie(profileCookie); err == nil {
			if id, err := uuid.Parse(c.Value); err == nil {
				profileID = id.String()
			}
		}

		if profileID == "" {
			profileID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     profileCookie,
				Value:    profileID,
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), CtxProfileID, profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProfileID returns the profile bound to the request, or "" outside the
// Profile middleware.
func ProfileID(r *http.Request) string {
	id, _ := r.Context().Value(CtxProfileID).(string)
	return id
}

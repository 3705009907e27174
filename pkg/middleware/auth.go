package middleware

import (
	"context"
	"net/http"
	"strings"

	"motovasiya/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const claimsKey contextKey = "auth_claims"

// SessionClaims is the token payload issued at login and required by every
// admin-scoped endpoint.
type SessionClaims struct {
	InstructorID string `json:"instructor_id"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// ClaimsFrom returns the verified session claims, if the request carried a
// valid bearer token.
func ClaimsFrom(ctx context.Context) (*SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*SessionClaims)
	return claims, ok
}

func parseBearer(r *http.Request, secret string) (*SessionClaims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// RequireAuth rejects requests without a valid bearer token. Any
// authenticated instructor passes; admin-only behavior is decided per
// handler from the claims.
func RequireAuth(secret string, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			claims, ok := parseBearer(r, secret)
			if !ok {
				log.Warn("Unauthorized request",
					"request_id", RequestID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Authentication required"}`))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

// OptionalAuth attaches claims when a valid token is present and lets the
// request through either way. Used by listings whose visibility widens for
// authenticated callers.
func OptionalAuth(secret string) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			if claims, ok := parseBearer(r, secret); ok {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
			next(w, r, ps)
		}
	}
}

// Package api implements the daybook REST API using chi.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Auth modes accepted by AuthMiddleware.
const (
	AuthDisabled = "disabled"
	AuthToken    = "token"
	AuthJWT      = "jwt"
)

// AuthMiddleware returns middleware that validates the Authorization
// header according to mode:
//   - disabled: all requests pass through.
//   - token: the Bearer value must equal secret.
//   - jwt: the Bearer value must be a valid HS256 JWT signed with secret.
func AuthMiddleware(mode, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mode == AuthDisabled || mode == "" {
				next.ServeHTTP(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			bearer := strings.TrimPrefix(auth, "Bearer ")

			switch mode {
			case AuthToken:
				if bearer != secret {
					writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
					return
				}
			case AuthJWT:
				if !validJWT(bearer, secret) {
					writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
					return
				}
			default:
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validJWT(token, secret string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	return err == nil && parsed.Valid
}

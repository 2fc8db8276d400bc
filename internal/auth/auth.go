// Package auth resolves the caller behind a request. Token issuance
// belongs to the external identity provider; this layer only verifies the
// HMAC signature and maps the subject onto a user row.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lsantos-dev/moneta/internal/user"
)

type ctxKey struct{}

// Middleware verifies the Bearer token and resolves the caller's user
// row, creating it on first authenticated contact. Downstream handlers
// read the result with CurrentUser.
func Middleware(users *user.Service, secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing auth token", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(h, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("invalid signing method")
				}

				return key, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid claims", http.StatusUnauthorized)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				http.Error(w, "subject missing", http.StatusUnauthorized)
				return
			}

			email, _ := claims["email"].(string)

			u, err := users.Ensure(r.Context(), sub, email)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the resolved caller. Behind Middleware it is never
// nil.
func CurrentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(ctxKey{}).(*user.User)
	return u
}

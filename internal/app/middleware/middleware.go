package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"Seenit/internal/app/config"
	"Seenit/internal/app/httputils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	usernameKey
)

// UserID returns the authenticated caller's id, if any. Handlers that
// require authentication check the second return value and reject the
// request with 401 when it is false.
func UserID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok
}

func Username(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

// WithIdentity is used by handler tests to fake an authenticated caller.
func WithIdentity(ctx context.Context, userID uint64, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

// Auth extracts the caller identity from a bearer token. Requests
// without an Authorization header pass through anonymous; requests with
// a malformed or expired token are rejected outright.
func Auth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httputils.RespondMessage(w, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecretKey), nil
			})
			if err != nil || !token.Valid {
				httputils.RespondMessage(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				httputils.RespondMessage(w, http.StatusUnauthorized, "invalid token claims")
				return
			}
			id, ok := claims["userId"].(float64)
			if !ok {
				httputils.RespondMessage(w, http.StatusUnauthorized, "invalid token claims")
				return
			}
			username, _ := claims["username"].(string)

			ctx := WithIdentity(r.Context(), uint64(id), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"url":    r.URL.Path,
			"method": r.Method,
			"took":   time.Since(start),
		}).Info("request handled")
	})
}

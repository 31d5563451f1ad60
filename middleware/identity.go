// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/4mubarak/alx-polly/auth"
)

type contextKey string

const identityKey contextKey = "alx-polly-identity"

// WithUserID stores a resolved user ID on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// UserIDFromContext retrieves the user ID stored by WithUserID. An empty
// string means the request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(identityKey).(string)
	return userID
}

// WithIdentity resolves the current identity from the Authorization header
// and stores it on the request context. Missing, malformed, or expired
// tokens leave the request anonymous rather than rejecting it; operations
// that need an identity report their own unauthenticated error.
func WithIdentity(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			next(w, r)
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		userID, err := auth.ParseSessionToken(token, secret)
		if err != nil {
			next(w, r)
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/session"
)

// VisibilityResolver maps an authenticated user to the set of user IDs
// whose records they may see. The couple service implements it.
type VisibilityResolver interface {
	VisibleUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Auth validates the Bearer token, resolves the caller's visibility
// scope and stores the resulting session on the request context. The
// token's subject claim carries the user ID.
func Auth(secret string, resolver VisibilityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := &jwt.RegisteredClaims{}

			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				http.Error(w, "invalid token subject", http.StatusUnauthorized)
				return
			}

			visible, err := resolver.VisibleUserIDs(r.Context(), userID)
			if err != nil {
				slog.Error("failed to resolve visibility scope", "user_id", userID, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)

				return
			}

			ctx := session.NewContext(r.Context(), session.New(userID, visible))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

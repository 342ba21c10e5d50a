package auth

import (
	"context"
	"net/http"
	"strings"
)

const (
	AdminTokenHeader    = "X-Token"
	AuthorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Credential is what a caller presented to act on a campaign.
// Both parts may be empty.
type Credential struct {
	AdminToken string
	OwnerToken string
}

func (c Credential) Empty() bool {
	return c.AdminToken == "" && c.OwnerToken == ""
}

// CredentialFromRequest reads the admin token header and the bearer session token.
func CredentialFromRequest(r *http.Request) Credential {
	return Credential{
		AdminToken: strings.TrimSpace(r.Header.Get(AdminTokenHeader)),
		OwnerToken: BearerToken(r),
	}
}

func BearerToken(r *http.Request) string {
	value := r.Header.Get(AuthorizationHeader)
	if !strings.HasPrefix(value, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(value, bearerPrefix))
}

// WithUserID injects the authenticated user id for downstream service layers.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// RequireUser rejects requests without a valid session token and stores the
// user id in the request context.
func RequireUser(tokens *TokenIssuer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			http.Error(w, "authorization token is missing", http.StatusUnauthorized)
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	})
}

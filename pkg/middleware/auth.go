package middleware

import (
	"net/http"

	"real-estate-backend/pkg/utils"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequireAuth enforces a valid Bearer token placed in the request
// context by jwtauth.Verifier, then attaches (userId, role) identity.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				utils.ResponseUnauthorized(w, "Missing or invalid authorization token")
				return
			}

			userIDStr, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				logger.Warn("Token missing user_id claim", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}
			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				logger.Warn("Token user_id claim is not a UUID", zap.String("user_id", userIDStr))
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			role, err := utils.GetRoleFromClaims(claims)
			if err != nil {
				logger.Warn("Token missing role claim", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches identity when a valid token is present and
// silently proceeds unauthenticated otherwise.
func OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				next.ServeHTTP(w, r)
				return
			}

			userIDStr, idErr := utils.GetUserIDFromClaims(claims)
			role, roleErr := utils.GetRoleFromClaims(claims)
			if idErr != nil || roleErr != nil {
				next.ServeHTTP(w, r)
				return
			}
			userID, parseErr := uuid.Parse(userIDStr)
			if parseErr != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to callers whose role is in the allowed set.
// Must run after RequireAuth.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if _, ok := allowed[role]; !ok {
				logger.Warn("Role check failed",
					zap.String("role", role),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/mfarrell/taskapi/internal/api/shared"
	"github.com/mfarrell/taskapi/internal/platform/logger"
	"github.com/mfarrell/taskapi/internal/service/auth"
)

// Gate error messages. The client is deliberately told no more than
// "missing" vs "failed"; the specific failure reason only appears in logs.
const (
	msgNoToken    = "No token provided."
	msgAuthFailed = "Authentication failed."
)

// AuthMiddleware guards mutating routes with a signed-token check.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates signed tokens from the Authorization header
// before the route handler runs. The raw header value is the token:
// no "Bearer " prefix is expected or accepted. A request that fails
// here never reaches validation or the store.
//
// Claims are validated but not attached to the request context; nothing
// downstream consumes them.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgNoToken)
			return
		}

		if _, err := m.jwtService.ValidateToken(r.Context(), token); err != nil {
			log := logger.FromContext(r.Context())
			log.Debug("token rejected",
				"error", err,
				"path", r.URL.Path,
				"method", r.Method)
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgAuthFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}

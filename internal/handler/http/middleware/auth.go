package middleware

import (
	"net/http"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/auth"
	"github.com/chronohr/timekeeping-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests that did not present a verifiable access
// token. The upstream jwtauth.Verifier only checks the signature; refresh
// tokens are signed with the same key, so the type claim is what keeps a
// refresh token from opening API endpoints.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}

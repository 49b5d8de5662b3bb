package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/utils"
)

// authenticate is the authentication gate. It never rejects a request: a
// missing, malformed, expired or unresolvable bearer token leaves the request
// anonymous, and only a token that resolves to an enabled user attaches a
// principal under [utils.PrincipalCtxKey].
//
// Whether anonymity is acceptable is decided per route by requireAuth.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		principal, ok := h.services.AuthService.ResolvePrincipal(r.Context(), token)
		if !ok {
			logger.FromRequest(r).Debug().Msg("bearer token did not resolve, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
	})
}

// requireAuth answers 401 when the gate left the request anonymous.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetPrincipalFromContext(r.Context()); !ok {
			writeError(w, r, ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

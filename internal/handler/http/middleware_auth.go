package http

import (
	"errors"
	"net/http"

	"github.com/promptkeep/promptkeep/internal/identity"
	"github.com/promptkeep/promptkeep/internal/logger"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [identity.ParseSessionToken], and on success stores the
// opaque user identifier in the request context before delegating to the next
// handler. Requests with a missing, malformed, expired, or otherwise invalid
// token are rejected with HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := identity.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ownerID, err := identity.ParseSessionToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, identity.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		// downstream handlers read the identity from the context instead of
		// re-parsing the token
		ctx := identity.WithOwnerID(r.Context(), ownerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

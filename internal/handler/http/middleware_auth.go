package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
)

// RequireAuth is a route middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the user's ID in
// the request context under [utils.UserIDCtxKey] before the chain continues.
// Otherwise the chain ends with 401 Unauthorized.
func (h *Handler) RequireAuth(c *router.Context) (*router.Response, error) {
	log := c.Logger()

	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
		return router.Error(http.StatusUnauthorized, msgUnauthorized, ErrEmptyAuthorizationHeader), nil
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Debug().Err(err).Send()
		return router.Error(http.StatusUnauthorized, msgUnauthorized, err), nil
	}

	token, err := h.services.AuthService.ParseToken(c.Context(), tokenString)
	if err != nil {
		log.Info().Err(err).Msg("error occurred during parsing token")
		return router.Error(http.StatusUnauthorized, msgUnauthorized, ErrUnauthenticated), nil
	}

	c.WithContext(utils.WithUserID(c.Context(), token.UserID))

	return nil, nil
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNotFound:         http.StatusNotFound,
	store.ErrAlreadyExists:    http.StatusConflict,
	store.ErrInvalidReference: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrEmptyUpdate: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse maps a service error to an envelope. Server side failures
// keep their details in the log only.
func errorResponse(c *router.Context, err error) *router.Response {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		c.Logger().Err(err).Str("path", c.URL.Path).Msg("request failed")
		return router.Error(status, http.StatusText(status), nil)
	}

	c.Logger().Debug().Err(err).Int("status", status).Send()
	return router.Error(status, http.StatusText(status), err)
}

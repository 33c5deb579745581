package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
)

func (h *Handler) getServerVersion(c *router.Context) (*router.Response, error) {
	return router.JSON(http.StatusOK, h.services.AppInfoService.GetAppInfo(c.Context())), nil
}

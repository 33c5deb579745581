package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) listCities(c *router.Context) (*router.Response, error) {
	page, err := pageFromQuery(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidQuery, err), nil
	}

	cities, err := h.services.CityService.ListCities(c.Context(), page)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, cities), nil
}

func (h *Handler) getCity(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	city, err := h.services.CityService.GetCity(c.Context(), id)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, city), nil
}

func (h *Handler) createCity(c *router.Context) (*router.Response, error) {
	var city models.CityCreate
	if err := c.Bind(&city); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}

	created, err := h.services.CityService.CreateCity(c.Context(), city)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusCreated, created), nil
}

func (h *Handler) updateCity(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	var update models.CityUpdate
	if err = c.Bind(&update); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}
	if update.IsEmpty() {
		return errorResponse(c, ErrEmptyUpdate), nil
	}

	updated, err := h.services.CityService.UpdateCity(c.Context(), id, update)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, updated), nil
}

func (h *Handler) deleteCity(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	if err = h.services.CityService.DeleteCity(c.Context(), id); err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, msgCityGone), nil
}

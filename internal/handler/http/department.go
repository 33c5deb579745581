package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) listDepartments(c *router.Context) (*router.Response, error) {
	page, err := pageFromQuery(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidQuery, err), nil
	}

	departments, err := h.services.DepartmentService.ListDepartments(c.Context(), page)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, departments), nil
}

func (h *Handler) getDepartment(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	department, err := h.services.DepartmentService.GetDepartment(c.Context(), id)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, department), nil
}

// listDepartmentCities lists the active cities of one department. An unknown
// department yields an empty list, not 404.
func (h *Handler) listDepartmentCities(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}
	page, err := pageFromQuery(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidQuery, err), nil
	}

	cities, err := h.services.CityService.ListCitiesByDepartment(c.Context(), id, page)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, cities), nil
}

func (h *Handler) createDepartment(c *router.Context) (*router.Response, error) {
	var department models.DepartmentCreate
	if err := c.Bind(&department); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}

	created, err := h.services.DepartmentService.CreateDepartment(c.Context(), department)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusCreated, created), nil
}

func (h *Handler) updateDepartment(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	var update models.DepartmentUpdate
	if err = c.Bind(&update); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}
	if update.IsEmpty() {
		return errorResponse(c, ErrEmptyUpdate), nil
	}

	updated, err := h.services.DepartmentService.UpdateDepartment(c.Context(), id, update)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, updated), nil
}

func (h *Handler) deleteDepartment(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	if err = h.services.DepartmentService.DeleteDepartment(c.Context(), id); err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, msgDepartmentGone), nil
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) listCategories(c *router.Context) (*router.Response, error) {
	page, err := pageFromQuery(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidQuery, err), nil
	}

	categories, err := h.services.CategoryService.ListCategories(c.Context(), page)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, categories), nil
}

func (h *Handler) getCategory(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	category, err := h.services.CategoryService.GetCategory(c.Context(), id)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, category), nil
}

func (h *Handler) createCategory(c *router.Context) (*router.Response, error) {
	var category models.CategoryCreate
	if err := c.Bind(&category); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}

	created, err := h.services.CategoryService.CreateCategory(c.Context(), category)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusCreated, created), nil
}

func (h *Handler) updateCategory(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	var update models.CategoryUpdate
	if err = c.Bind(&update); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}
	if update.IsEmpty() {
		return errorResponse(c, ErrEmptyUpdate), nil
	}

	updated, err := h.services.CategoryService.UpdateCategory(c.Context(), id, update)
	if err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, updated), nil
}

func (h *Handler) deleteCategory(c *router.Context) (*router.Response, error) {
	id, err := idParam(c)
	if err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidParams, err), nil
	}

	if err = h.services.CategoryService.DeleteCategory(c.Context(), id); err != nil {
		return errorResponse(c, err), nil
	}

	return router.JSON(http.StatusOK, msgCategoryGone), nil
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-catalog-api/internal/router"
)

// Init builds the outer mux. Every path under /api is dispatched by the
// router returned from [Handler.API].
func (h *Handler) Init() *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(h.withTraceID)
	mux.Use(h.withLogging)
	mux.Use(h.withMetrics)
	mux.Use(withGzipRequest)
	mux.Use(middleware.Compress(5, "application/json"))

	mux.Handle("/api/*", h.API())
	mux.Get("/healthz", healthz)
	mux.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	mux.NotFound(notFound)
	mux.MethodNotAllowed(methodNotAllowed)

	return mux
}

// API registers the resource routes. Write routes require a bearer token.
func (h *Handler) API() *router.Router {
	rt := router.New(h.logger)
	rt.Use(router.RequestLog)

	params := router.ValidateParams(idParamsSchema)
	page := router.ValidateQuery(paginationSchema)

	rt.Get("/api/version", h.getServerVersion)

	rt.Post("/api/users/register", router.ValidateBody(registerSchema), h.register)
	rt.Post("/api/users/login", router.ValidateBody(loginSchema), h.login)

	rt.Get("/api/categories", page, h.listCategories)
	rt.Get("/api/categories/:id", params, h.getCategory)
	rt.Post("/api/categories", h.RequireAuth, router.ValidateBody(categorySchema), h.createCategory)
	rt.Patch("/api/categories/:id", h.RequireAuth, params, router.ValidateBody(categorySchema), h.updateCategory)
	rt.Delete("/api/categories/:id", h.RequireAuth, params, h.deleteCategory)

	rt.Get("/api/locations/departments", page, h.listDepartments)
	rt.Get("/api/locations/departments/:id", params, h.getDepartment)
	rt.Get("/api/locations/departments/:id/cities", params, page, h.listDepartmentCities)
	rt.Post("/api/locations/departments", h.RequireAuth, router.ValidateBody(departmentCreateSchema), h.createDepartment)
	rt.Patch("/api/locations/departments/:id", h.RequireAuth, params, router.ValidateBody(departmentUpdateSchema), h.updateDepartment)
	rt.Delete("/api/locations/departments/:id", h.RequireAuth, params, h.deleteDepartment)

	rt.Get("/api/locations/cities", page, h.listCities)
	rt.Get("/api/locations/cities/:id", params, h.getCity)
	rt.Post("/api/locations/cities", h.RequireAuth, router.ValidateBody(cityCreateSchema), h.createCity)
	rt.Patch("/api/locations/cities/:id", h.RequireAuth, params, router.ValidateBody(cityUpdateSchema), h.updateCity)
	rt.Delete("/api/locations/cities/:id", h.RequireAuth, params, h.deleteCity)

	return rt
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, router.JSON(http.StatusOK, "ok"))
}

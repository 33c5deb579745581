// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the catalog REST API.
//
// The primary abstraction is [CatalogAdapter], which hides the JSON envelope
// and the bearer token handling from callers. Error statuses are mapped by
// mapHTTPError to the sentinel values in errors.go so that callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// CatalogAdapter defines communication with the catalog server.
type CatalogAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account. The returned user never carries a
	// password.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, username, password string) error

	// Version returns the build information reported by the server.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	ListCategories(ctx context.Context, page models.Page) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (models.Department, error)
	ListDepartmentCities(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error)
	CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error

	ListCities(ctx context.Context, page models.Page) ([]models.City, error)
	GetCity(ctx context.Context, id int64) (models.City, error)
	CreateCity(ctx context.Context, city models.CityCreate) (models.City, error)
	UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error)
	DeleteCity(ctx context.Context, id int64) error
}

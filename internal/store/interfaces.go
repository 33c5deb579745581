//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// CategoryRepository persists categories. Reads see active rows only.
type CategoryRepository interface {
	ListCategories(ctx context.Context, page models.Page) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// DepartmentRepository persists departments. Reads see active rows only.
type DepartmentRepository interface {
	ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (models.Department, error)
	CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

// CityRepository persists cities. Reads see active rows only.
type CityRepository interface {
	ListCities(ctx context.Context, page models.Page) ([]models.City, error)
	ListCitiesByDepartment(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error)
	GetCity(ctx context.Context, id int64) (models.City, error)
	CreateCity(ctx context.Context, city models.CityCreate) (models.City, error)
	UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error)
	DeleteCity(ctx context.Context, id int64) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

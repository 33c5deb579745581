//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// CategoryService serves categories with a read-through cache that is
// dropped on every successful write.
type CategoryService interface {
	ListCategories(ctx context.Context, page models.Page) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// DepartmentService serves departments, cached like [CategoryService].
type DepartmentService interface {
	ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error)
	GetDepartment(ctx context.Context, id int64) (models.Department, error)
	CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error)
	UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

// CityService serves cities, cached like [CategoryService].
type CityService interface {
	ListCities(ctx context.Context, page models.Page) ([]models.City, error)
	ListCitiesByDepartment(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error)
	GetCity(ctx context.Context, id int64) (models.City, error)
	CreateCity(ctx context.Context, city models.CityCreate) (models.City, error)
	UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error)
	DeleteCity(ctx context.Context, id int64) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

package service

import (
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
)

type Services struct {
	CategoryService   CategoryService
	DepartmentService DepartmentService
	CityService       CityService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(repositories *store.Repositories, caches *Caches, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CategoryService:   NewCategoryService(repositories.CategoryRepository, caches.Categories, logger),
		DepartmentService: NewDepartmentService(repositories.DepartmentRepository, caches.Departments, logger),
		CityService:       NewCityService(repositories.CityRepository, caches.Cities, logger),
		AuthService:       NewAuthService(repositories.UserRepository, utils.NewPasswordHasher(), cfg, logger),
		AppInfoService:    appInfoService,
	}, nil
}

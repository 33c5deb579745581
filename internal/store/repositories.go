package store

import "github.com/MKhiriev/go-catalog-api/internal/logger"

// Repositories bundles every repository backed by one [DB].
type Repositories struct {
	CategoryRepository   CategoryRepository
	DepartmentRepository DepartmentRepository
	CityRepository       CityRepository
	UserRepository       UserRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		CategoryRepository:   NewCategoryRepository(db, log),
		DepartmentRepository: NewDepartmentRepository(db, log),
		CityRepository:       NewCityRepository(db, log),
		UserRepository:       NewUserRepository(db, log),
	}
}

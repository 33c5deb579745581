package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

type cityRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCityRepository(db *DB, logger *logger.Logger) CityRepository {
	logger.Debug().Msg("creating city repository")
	return &cityRepository{db: db, logger: logger}
}

func (r *cityRepository) ListCities(ctx context.Context, page models.Page) ([]models.City, error) {
	q := r.db.listActive(models.City{}.TableName(), cityColumns, "city_name", page)
	return queryAll(ctx, r.db, q, scanCity)
}

func (r *cityRepository) ListCitiesByDepartment(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error) {
	q := r.db.listActive(models.City{}.TableName(), cityColumns, "city_name", page).
		Where(squirrel.Eq{"department_id": departmentID})
	return queryAll(ctx, r.db, q, scanCity)
}

func (r *cityRepository) GetCity(ctx context.Context, id int64) (models.City, error) {
	q := r.db.getActive(models.City{}.TableName(), cityColumns, id)
	return queryOne(ctx, r.db, q, scanCity)
}

func (r *cityRepository) CreateCity(ctx context.Context, city models.CityCreate) (models.City, error) {
	q := r.db.insert(models.City{}.TableName(), map[string]any{
		"city_name":     city.Name,
		"city_code":     city.Code,
		"department_id": city.DepartmentID,
	}, cityColumns)
	return queryOne(ctx, r.db, q, scanCity)
}

func (r *cityRepository) UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error) {
	if update.IsEmpty() {
		return r.GetCity(ctx, id)
	}

	values := make(map[string]any, 2)
	if update.Name != nil {
		values["city_name"] = *update.Name
	}
	if update.Code != nil {
		values["city_code"] = *update.Code
	}

	q := r.db.updateActive(models.City{}.TableName(), values, id, cityColumns)
	return queryOne(ctx, r.db, q, scanCity)
}

func (r *cityRepository) DeleteCity(ctx context.Context, id int64) error {
	return exec(ctx, r.db, r.db.softDelete(models.City{}.TableName(), id))
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

type cityService struct {
	repository store.CityRepository
	cache      *cache.TTL[[]models.City]
	logger     *logger.Logger
}

func NewCityService(repository store.CityRepository, readCache *cache.TTL[[]models.City], logger *logger.Logger) CityService {
	return &cityService{
		repository: repository,
		cache:      readCache,
		logger:     logger,
	}
}

func (s *cityService) ListCities(ctx context.Context, page models.Page) ([]models.City, error) {
	page = page.Normalize()
	cities, err := cached(ctx, s.cache, page.Key("cities"), func(ctx context.Context) ([]models.City, error) {
		return s.repository.ListCities(ctx, page)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing cities: %w", err)
	}
	return cities, nil
}

func (s *cityService) ListCitiesByDepartment(ctx context.Context, departmentID int64, page models.Page) ([]models.City, error) {
	page = page.Normalize()
	key := page.Key(fmt.Sprintf("department-%d-cities", departmentID))
	cities, err := cached(ctx, s.cache, key, func(ctx context.Context) ([]models.City, error) {
		return s.repository.ListCitiesByDepartment(ctx, departmentID, page)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing cities of department %d: %w", departmentID, err)
	}
	return cities, nil
}

func (s *cityService) GetCity(ctx context.Context, id int64) (models.City, error) {
	city, err := cachedOne(ctx, s.cache, itemKey("city", id), func(ctx context.Context) (models.City, error) {
		return s.repository.GetCity(ctx, id)
	})
	if err != nil {
		return models.City{}, fmt.Errorf("error getting city %d: %w", id, err)
	}
	return city, nil
}

func (s *cityService) CreateCity(ctx context.Context, city models.CityCreate) (models.City, error) {
	created, err := s.repository.CreateCity(ctx, city)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("city_code", city.Code).
			Int64("department_id", city.DepartmentID).
			Msg("city creation failed")
		return models.City{}, fmt.Errorf("error creating city: %w", err)
	}

	s.cache.Clear()
	return created, nil
}

func (s *cityService) UpdateCity(ctx context.Context, id int64, update models.CityUpdate) (models.City, error) {
	updated, err := s.repository.UpdateCity(ctx, id, update)
	if err != nil {
		return models.City{}, fmt.Errorf("error updating city %d: %w", id, err)
	}

	s.cache.Clear()
	return updated, nil
}

func (s *cityService) DeleteCity(ctx context.Context, id int64) error {
	if err := s.repository.DeleteCity(ctx, id); err != nil {
		return fmt.Errorf("error deleting city %d: %w", id, err)
	}

	s.cache.Clear()
	return nil
}

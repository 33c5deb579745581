package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

type departmentService struct {
	repository store.DepartmentRepository
	cache      *cache.TTL[[]models.Department]
	logger     *logger.Logger
}

func NewDepartmentService(repository store.DepartmentRepository, readCache *cache.TTL[[]models.Department], logger *logger.Logger) DepartmentService {
	return &departmentService{
		repository: repository,
		cache:      readCache,
		logger:     logger,
	}
}

func (s *departmentService) ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error) {
	page = page.Normalize()
	departments, err := cached(ctx, s.cache, page.Key("departments"), func(ctx context.Context) ([]models.Department, error) {
		return s.repository.ListDepartments(ctx, page)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

func (s *departmentService) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	department, err := cachedOne(ctx, s.cache, itemKey("department", id), func(ctx context.Context) (models.Department, error) {
		return s.repository.GetDepartment(ctx, id)
	})
	if err != nil {
		return models.Department{}, fmt.Errorf("error getting department %d: %w", id, err)
	}
	return department, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error) {
	created, err := s.repository.CreateDepartment(ctx, department)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("department_code", department.Code).Msg("department creation failed")
		return models.Department{}, fmt.Errorf("error creating department: %w", err)
	}

	s.cache.Clear()
	return created, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error) {
	updated, err := s.repository.UpdateDepartment(ctx, id, update)
	if err != nil {
		return models.Department{}, fmt.Errorf("error updating department %d: %w", id, err)
	}

	s.cache.Clear()
	return updated, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.repository.DeleteDepartment(ctx, id); err != nil {
		return fmt.Errorf("error deleting department %d: %w", id, err)
	}

	s.cache.Clear()
	return nil
}

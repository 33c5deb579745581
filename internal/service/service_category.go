package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

type categoryService struct {
	repository store.CategoryRepository
	cache      *cache.TTL[[]models.Category]
	logger     *logger.Logger
}

func NewCategoryService(repository store.CategoryRepository, readCache *cache.TTL[[]models.Category], logger *logger.Logger) CategoryService {
	return &categoryService{
		repository: repository,
		cache:      readCache,
		logger:     logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, page models.Page) ([]models.Category, error) {
	page = page.Normalize()
	categories, err := cached(ctx, s.cache, page.Key("categories"), func(ctx context.Context) ([]models.Category, error) {
		return s.repository.ListCategories(ctx, page)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	category, err := cachedOne(ctx, s.cache, itemKey("category", id), func(ctx context.Context) (models.Category, error) {
		return s.repository.GetCategory(ctx, id)
	})
	if err != nil {
		return models.Category{}, fmt.Errorf("error getting category %d: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error) {
	created, err := s.repository.CreateCategory(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category_name", category.Name).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("error creating category: %w", err)
	}

	s.cache.Clear()
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	updated, err := s.repository.UpdateCategory(ctx, id, update)
	if err != nil {
		return models.Category{}, fmt.Errorf("error updating category %d: %w", id, err)
	}

	s.cache.Clear()
	return updated, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repository.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("error deleting category %d: %w", id, err)
	}

	s.cache.Clear()
	return nil
}

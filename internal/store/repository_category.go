package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) ListCategories(ctx context.Context, page models.Page) ([]models.Category, error) {
	q := r.db.listActive(models.Category{}.TableName(), categoryColumns, "category_name", page)
	return queryAll(ctx, r.db, q, scanCategory)
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	q := r.db.getActive(models.Category{}.TableName(), categoryColumns, id)
	return queryOne(ctx, r.db, q, scanCategory)
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.CategoryCreate) (models.Category, error) {
	q := r.db.insert(models.Category{}.TableName(), map[string]any{
		"category_name": category.Name,
	}, categoryColumns)
	return queryOne(ctx, r.db, q, scanCategory)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error) {
	if update.IsEmpty() {
		return r.GetCategory(ctx, id)
	}

	q := r.db.updateActive(models.Category{}.TableName(), map[string]any{
		"category_name": *update.Name,
	}, id, categoryColumns)
	return queryOne(ctx, r.db, q, scanCategory)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	return exec(ctx, r.db, r.db.softDelete(models.Category{}.TableName(), id))
}

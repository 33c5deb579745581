package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/mock"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

func newTestCaches(t *testing.T) *Caches {
	t.Helper()
	caches, err := NewCaches(config.Cache{TTL: time.Minute}, nil)
	require.NoError(t, err)
	return caches
}

func newTestCategoryService(t *testing.T) (CategoryService, *mock.MockCategoryRepository, *Caches) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCategoryRepository(ctrl)
	caches := newTestCaches(t)
	return NewCategoryService(repo, caches.Categories, logger.Nop()), repo, caches
}

func TestCategoryService_ListCategories_CachesPerPage(t *testing.T) {
	svc, repo, caches := newTestCategoryService(t)
	ctx := context.Background()
	books := []models.Category{{ID: 1, Name: "Books", Active: true}}

	// first read hits the repository with the default limit, second is served from cache
	repo.EXPECT().ListCategories(gomock.Any(), models.Page{Offset: 0, Limit: models.DefaultLimit}).Return(books, nil).Times(1)

	got, err := svc.ListCategories(ctx, models.Page{})
	require.NoError(t, err)
	assert.Equal(t, books, got)

	got, err = svc.ListCategories(ctx, models.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, books, got)

	_, ok := caches.Categories.Get("categories-0-100")
	assert.True(t, ok)

	// a different page is a different key
	repo.EXPECT().ListCategories(gomock.Any(), models.Page{Offset: 100, Limit: 100}).Return([]models.Category{}, nil)
	_, err = svc.ListCategories(ctx, models.Page{Offset: 100})
	require.NoError(t, err)
}

func TestCategoryService_GetCategory_Cached(t *testing.T) {
	svc, repo, caches := newTestCategoryService(t)
	ctx := context.Background()

	repo.EXPECT().GetCategory(gomock.Any(), int64(7)).Return(models.Category{ID: 7, Name: "Games"}, nil).Times(1)

	for range 3 {
		got, err := svc.GetCategory(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Games", got.Name)
	}

	_, ok := caches.Categories.Get("category-7")
	assert.True(t, ok)
}

func TestCategoryService_GetCategory_ErrorsAreNotCached(t *testing.T) {
	svc, repo, caches := newTestCategoryService(t)

	repo.EXPECT().GetCategory(gomock.Any(), int64(9)).Return(models.Category{}, store.ErrNotFound).Times(2)

	for range 2 {
		_, err := svc.GetCategory(context.Background(), 9)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}
	assert.Zero(t, caches.Categories.Len())
}

func TestCategoryService_WritesClearCache(t *testing.T) {
	svc, repo, caches := newTestCategoryService(t)
	ctx := context.Background()
	name := "Board games"

	repo.EXPECT().CreateCategory(gomock.Any(), models.CategoryCreate{Name: "Books"}).Return(models.Category{ID: 1}, nil)
	repo.EXPECT().UpdateCategory(gomock.Any(), int64(1), models.CategoryUpdate{Name: &name}).Return(models.Category{ID: 1, Name: name}, nil)
	repo.EXPECT().DeleteCategory(gomock.Any(), int64(1)).Return(nil)

	writes := []func() error{
		func() error { _, err := svc.CreateCategory(ctx, models.CategoryCreate{Name: "Books"}); return err },
		func() error { _, err := svc.UpdateCategory(ctx, 1, models.CategoryUpdate{Name: &name}); return err },
		func() error { return svc.DeleteCategory(ctx, 1) },
	}

	for _, write := range writes {
		caches.Categories.Set("categories-0-100", []models.Category{{ID: 1}})
		require.NoError(t, write())
		assert.Zero(t, caches.Categories.Len())
	}
}

func TestCategoryService_FailedWriteKeepsCache(t *testing.T) {
	svc, repo, caches := newTestCategoryService(t)

	caches.Categories.Set("categories-0-100", []models.Category{{ID: 1}})
	repo.EXPECT().DeleteCategory(gomock.Any(), int64(1)).Return(errors.New("db down"))

	err := svc.DeleteCategory(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 1, caches.Categories.Len())
}

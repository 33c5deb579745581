package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

var categoryRowColumns = []string{"id", "category_name", "active", "created_at"}

func newTestCategoryRepo(t *testing.T) (CategoryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, DialectPostgres)
	return NewCategoryRepository(db, logger.Nop()), mock
}

func TestListCategories(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, category_name, active, created_at FROM categories WHERE active = $1 ORDER BY category_name ASC LIMIT 10 OFFSET 5")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).
			AddRow(1, "Books", true, now).
			AddRow(2, "Games", true, now))

	got, err := repo.ListCategories(context.Background(), models.Page{Offset: 5, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Books", got[0].Name)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestListCategories_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnRows(sqlmock.NewRows(categoryRowColumns))

	got, err := repo.ListCategories(context.Background(), models.Page{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCategories_QueryError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM categories").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListCategories(context.Background(), models.Page{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetCategory_NotFound(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE id = $1 AND active = $2")).
		WithArgs(int64(9), true).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns))

	_, err := repo.GetCategory(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories (category_name) VALUES ($1) RETURNING id, category_name, active, created_at")).
		WithArgs("Books").
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).AddRow(1, "Books", true, now))

	got, err := repo.CreateCategory(context.Background(), models.CategoryCreate{Name: "Books"})
	require.NoError(t, err)
	assert.Equal(t, models.Category{ID: 1, Name: "Books", Active: true, CreatedAt: now}, got)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Books").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCategory(context.Background(), models.CategoryCreate{Name: "Books"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdateCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)
	now := time.Now()
	name := "Board games"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE categories SET category_name = $1 WHERE id = $2 AND active = $3 RETURNING")).
		WithArgs(name, int64(4), true).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).AddRow(4, name, true, now))

	got, err := repo.UpdateCategory(context.Background(), 4, models.CategoryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
}

func TestUpdateCategory_EmptyUpdateReads(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, category_name, active, created_at FROM categories WHERE id = $1")).
		WithArgs(int64(4), true).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).AddRow(4, "Books", true, time.Now()))

	got, err := repo.UpdateCategory(context.Background(), 4, models.CategoryUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)
}

func TestDeleteCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET active = $1 WHERE id = $2 AND active = $3")).
		WithArgs(false, int64(4), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCategory(context.Background(), 4))
}

func TestDeleteCategory_AlreadyDeleted(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec("UPDATE categories SET active").
		WithArgs(false, int64(4), true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), 4), ErrNotFound)
}

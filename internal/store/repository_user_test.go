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

var userRowColumns = []string{"id", "username", "password_hash", "first_name", "first_last_name", "active", "created_at"}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, DialectPostgres)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()
	user := models.User{Username: "jdoe", PasswordHash: "hash", FirstName: "John", LastName: "Doe"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (first_last_name,first_name,password_hash,username) VALUES ($1,$2,$3,$4) RETURNING")).
		WithArgs("Doe", "John", "hash", "jdoe").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "jdoe", "hash", "John", "Doe", true, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.True(t, created.Active)
	assert.Equal(t, now, created.CreatedAt)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "jdoe"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "jdoe"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.CreateUser(context.Background(), models.User{Username: "jdoe"})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1 AND active = $2")).
		WithArgs("jdoe", true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "jdoe", "hash", "John", "Doe", true, time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("ghost", true).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

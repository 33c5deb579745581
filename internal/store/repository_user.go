package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with server-assigned fields
// (UserID, Active, CreatedAt). user.PasswordHash must already be set.
//
// A duplicate username yields [ErrAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	q := r.db.insert(user.TableName(), map[string]any{
		"username":        user.Username,
		"password_hash":   user.PasswordHash,
		"first_name":      user.FirstName,
		"first_last_name": user.LastName,
	}, userColumns)

	return queryOne(ctx, r.db, q, scanUser)
}

// FindUserByUsername retrieves an active user by username. A missing or
// deactivated account yields [ErrNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	q := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		Where(squirrel.Eq{"active": true})

	return queryOne(ctx, r.db, q, scanUser)
}

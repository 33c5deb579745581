// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

var (
	categoryColumns   = []string{"id", "category_name", "active", "created_at"}
	departmentColumns = []string{"id", "department_name", "department_code", "active"}
	cityColumns       = []string{"id", "city_name", "city_code", "department_id", "active"}
	userColumns       = []string{"id", "username", "password_hash", "first_name", "first_last_name", "active", "created_at"}
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// listActive selects one page of active rows ordered by orderBy.
func (db *DB) listActive(table string, columns []string, orderBy string, page models.Page) squirrel.SelectBuilder {
	page = page.Normalize()
	return db.builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"active": true}).
		OrderBy(orderBy + " ASC").
		Offset(page.Offset).
		Limit(page.Limit)
}

// getActive selects a single active row by id.
func (db *DB) getActive(table string, columns []string, id int64) squirrel.SelectBuilder {
	return db.builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true})
}

// insert inserts one row and returns it.
func (db *DB) insert(table string, values map[string]any, returning []string) squirrel.InsertBuilder {
	return db.builder.
		Insert(table).
		SetMap(values).
		Suffix(returningClause(returning))
}

// updateActive updates an active row by id and returns it.
func (db *DB) updateActive(table string, values map[string]any, id int64, returning []string) squirrel.UpdateBuilder {
	return db.builder.
		Update(table).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true}).
		Suffix(returningClause(returning))
}

// softDelete marks an active row inactive.
func (db *DB) softDelete(table string, id int64) squirrel.UpdateBuilder {
	return db.builder.
		Update(table).
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true})
}

func returningClause(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// queryAll runs q and scans every row with scan.
func queryAll[T any](ctx context.Context, db *DB, q squirrel.Sqlizer, scan func(scanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "queryAll").Str("query", query).Msg("error executing query")
		return nil, db.classify(err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// queryOne runs q and scans the first row. No rows yields [ErrNotFound].
func queryOne[T any](ctx context.Context, db *DB, q squirrel.Sqlizer, scan func(scanner) (T, error)) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := q.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "queryOne").Str("query", query).Msg("error executing query")
		return zero, db.classify(err)
	}

	// pgx may report constraint violations only once the row is read
	item, err := scan(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return zero, ErrNotFound
	case err != nil:
		if classified := db.errorClassificator.Classify(err); classified != nil {
			return zero, fmt.Errorf("%w: %w", classified, err)
		}
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// exec runs a statement that must affect at least one row.
func exec(ctx context.Context, db *DB, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exec").Str("query", query).Msg("error executing statement")
		return db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanCategory(row scanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Active, &c.CreatedAt)
	return c, err
}

func scanDepartment(row scanner) (models.Department, error) {
	var d models.Department
	err := row.Scan(&d.ID, &d.Name, &d.Code, &d.Active)
	return d, err
}

func scanCity(row scanner) (models.City, error) {
	var c models.City
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.DepartmentID, &c.Active)
	return c, err
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Active, &u.CreatedAt)
	return u, err
}

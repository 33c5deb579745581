package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

type departmentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewDepartmentRepository(db *DB, logger *logger.Logger) DepartmentRepository {
	logger.Debug().Msg("creating department repository")
	return &departmentRepository{db: db, logger: logger}
}

func (r *departmentRepository) ListDepartments(ctx context.Context, page models.Page) ([]models.Department, error) {
	q := r.db.listActive(models.Department{}.TableName(), departmentColumns, "department_name", page)
	return queryAll(ctx, r.db, q, scanDepartment)
}

func (r *departmentRepository) GetDepartment(ctx context.Context, id int64) (models.Department, error) {
	q := r.db.getActive(models.Department{}.TableName(), departmentColumns, id)
	return queryOne(ctx, r.db, q, scanDepartment)
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, department models.DepartmentCreate) (models.Department, error) {
	q := r.db.insert(models.Department{}.TableName(), map[string]any{
		"department_name": department.Name,
		"department_code": department.Code,
	}, departmentColumns)
	return queryOne(ctx, r.db, q, scanDepartment)
}

func (r *departmentRepository) UpdateDepartment(ctx context.Context, id int64, update models.DepartmentUpdate) (models.Department, error) {
	if update.IsEmpty() {
		return r.GetDepartment(ctx, id)
	}

	values := make(map[string]any, 2)
	if update.Name != nil {
		values["department_name"] = *update.Name
	}
	if update.Code != nil {
		values["department_code"] = *update.Code
	}

	q := r.db.updateActive(models.Department{}.TableName(), values, id, departmentColumns)
	return queryOne(ctx, r.db, q, scanDepartment)
}

func (r *departmentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	return exec(ctx, r.db, r.db.softDelete(models.Department{}.TableName(), id))
}

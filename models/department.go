package models

// Department is a top-level administrative location that groups cities.
type Department struct {
	ID     int64  `json:"id"`
	Name   string `json:"department_name"`
	Code   string `json:"department_code"`
	Active bool   `json:"active"`
}

// DepartmentCreate is the payload accepted when creating a department.
type DepartmentCreate struct {
	Name string `json:"department_name"`
	Code string `json:"department_code"`
}

// DepartmentUpdate is a partial department update. Nil fields are left as is.
type DepartmentUpdate struct {
	Name *string `json:"department_name,omitempty"`
	Code *string `json:"department_code,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u DepartmentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Code == nil
}

// TableName returns the name of the database table
// associated with the Department model.
func (Department) TableName() string {
	return "departments"
}

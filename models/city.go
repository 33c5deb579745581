package models

// City belongs to exactly one [Department].
type City struct {
	ID           int64  `json:"id"`
	Name         string `json:"city_name"`
	Code         string `json:"city_code"`
	DepartmentID int64  `json:"department_id"`
	Active       bool   `json:"active"`
}

// CityCreate is the payload accepted when creating a city.
type CityCreate struct {
	Name         string `json:"city_name"`
	Code         string `json:"city_code"`
	DepartmentID int64  `json:"department_id"`
}

// CityUpdate is a partial city update. The owning department cannot be
// changed.
type CityUpdate struct {
	Name *string `json:"city_name,omitempty"`
	Code *string `json:"city_code,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u CityUpdate) IsEmpty() bool {
	return u.Name == nil && u.Code == nil
}

// TableName returns the name of the database table
// associated with the City model.
func (City) TableName() string {
	return "cities"
}

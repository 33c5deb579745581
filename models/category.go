package models

import "time"

// Category is a catalog category. Deleting a category only marks it
// inactive; inactive categories are hidden from reads.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"category_name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryCreate is the payload accepted when creating a category.
type CategoryCreate struct {
	Name string `json:"category_name"`
}

// CategoryUpdate is a partial category update. Nil fields are left as is.
type CategoryUpdate struct {
	Name *string `json:"category_name,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil
}

// TableName returns the name of the database table
// associated with the Category model.
func (Category) TableName() string {
	return "categories"
}

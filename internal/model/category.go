package model

import "fmt"

// Category is a user-defined grouping that contains zero or more assets.
// Categories are read-only after creation except for deletion.
type Category struct {
	Key         string `json:"key"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SetKey sets the database key for this category.
func (c *Category) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this category.
func (c *Category) GetKey() string {
	return c.Key
}

// GenerateCategoryKey generates a database key for a category.
func GenerateCategoryKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixCategory, id)
}

// NewCategory creates a new category with the given id and display name.
func NewCategory(id, name, description string) *Category {
	return &Category{
		Key:         GenerateCategoryKey(id),
		ID:          id,
		Name:        name,
		Description: description,
	}
}

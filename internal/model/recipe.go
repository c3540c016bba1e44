package model

import "slices"

// Recipe is a single cocktail in the catalog. Records are loaded once at
// startup and never mutated afterwards.
type Recipe struct {
	Name            string   `json:"name" yaml:"name" validate:"required"`
	Slug            string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription" yaml:"longDescription"`
	Image           string   `json:"image" yaml:"image"`
	Ingredients     []string `json:"ingredients" yaml:"ingredients" validate:"min=1,dive,required"`
	Instructions    string   `json:"instructions" yaml:"instructions"`
	DateAdded       *Date    `json:"dateAdded,omitempty" yaml:"dateAdded,omitempty"`
}

// Clone returns a deep copy so callers cannot alter catalog state
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = slices.Clone(r.Ingredients)
	if r.DateAdded != nil {
		d := *r.DateAdded
		out.DateAdded = &d
	}
	return out
}

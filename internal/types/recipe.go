package types

import (
	"fmt"
	"time"
)

// Category classifies a recipe. The catalog recognizes exactly four values.
type Category string

const (
	CategoryVeg      Category = "veg"
	CategoryNonVeg   Category = "non-veg"
	CategoryDessert  Category = "dessert"
	CategoryFastFood Category = "fast-food"
)

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVeg, CategoryNonVeg, CategoryDessert, CategoryFastFood:
		return true
	}
	return false
}

// Difficulty rates how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the recognized difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe represents a recipe in the catalog. ID and CreatedBy are
// server-assigned and immutable after creation; the client never mutates a
// recipe in place.
type Recipe struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	CookingTime string     `json:"cooking_time"`
	Difficulty  Difficulty `json:"difficulty"`
	Image       string     `json:"image"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// CheckWire verifies that a recipe received from the server satisfies the
// catalog schema. Violations surface as a SchemaError at the client boundary.
func (r *Recipe) CheckWire() error {
	if r.ID == "" {
		return fmt.Errorf("missing id")
	}
	if r.Name == "" {
		return fmt.Errorf("recipe %s: missing name", r.ID)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("recipe %s: unknown category %q", r.ID, r.Category)
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("recipe %s: unknown difficulty %q", r.ID, r.Difficulty)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %s: empty ingredients", r.ID)
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("recipe %s: empty steps", r.ID)
	}
	return nil
}

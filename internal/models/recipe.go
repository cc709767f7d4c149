package models

import "time"

// RecipeDB represents a recipe row in the database
type RecipeDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	AuthorID    int64     `json:"author_id" db:"author_id"`       // Owner of the recipe
	Name        string    `json:"name" db:"name"`                 // Recipe title
	Image       string    `json:"image" db:"image"`               // Stored image path
	Text        string    `json:"text" db:"text"`                 // Description
	CookingTime int       `json:"cooking_time" db:"cooking_time"` // Minutes, at least 1
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// RecipeRow is a recipe joined with its author and the viewer's relation flags.
type RecipeRow struct {
	RecipeDB
	Author           UserRow `db:"author"`
	IsFavorited      bool    `db:"is_favorited"`
	IsInShoppingCart bool    `db:"is_in_shopping_cart"`
}

// RecipeIngredientRow is one ingredient line of a recipe with catalog data.
type RecipeIngredientRow struct {
	RecipeID        int64  `db:"recipe_id"`
	ID              int64  `db:"id"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int    `db:"amount"`
}

// IngredientAmount is an (ingredient id, amount) pair sent on recipe writes.
// swagger:model IngredientAmount
type IngredientAmount struct {
	// example: 1123
	ID int64 `json:"id"`
	// example: 10
	Amount int `json:"amount"`
}

// RecipeInput holds the writable fields of a recipe.
type RecipeInput struct {
	Name        string
	Image       string // base64 data URI
	Text        string
	CookingTime int
	Ingredients []IngredientAmount
}

// RecipeFilter narrows recipe listings.
type RecipeFilter struct {
	AuthorID         *int64
	IsFavorited      *bool
	IsInShoppingCart *bool
	Limit            int
	Offset           int
}

// RecipeIngredient is an ingredient line of the full recipe representation.
// swagger:model RecipeIngredient
type RecipeIngredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Recipe is the full recipe representation.
// swagger:model Recipe
type Recipe struct {
	ID               int64              `json:"id"`
	Author           User               `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
}

// RecipeMinified is the short recipe representation.
// swagger:model RecipeMinified
type RecipeMinified struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

package models

import "time"

// ShoppingListRow is one ingredient line contributed by a recipe in a user's cart.
type ShoppingListRow struct {
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int    `db:"amount"`
}

// ShoppingListRecipe is a recipe contributing to a user's cart.
type ShoppingListRecipe struct {
	Name   string `db:"name"`
	Author string `db:"author"`
}

// ShoppingListProduct is an aggregated product line.
type ShoppingListProduct struct {
	Name   string
	Amount int
	Unit   string
}

// ShoppingList is the aggregated shopping list of a user.
type ShoppingList struct {
	GeneratedAt time.Time
	Products    []ShoppingListProduct
	Recipes     []ShoppingListRecipe
}

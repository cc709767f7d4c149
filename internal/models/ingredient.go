package models

// Ingredient is a catalog entry: a product name with its measurement unit.
// swagger:model Ingredient
type Ingredient struct {
	// example: 1
	ID int64 `json:"id" db:"id"`
	// example: Капуста
	Name string `json:"name" db:"name"`
	// example: кг
	MeasurementUnit string `json:"measurement_unit" db:"measurement_unit"`
}

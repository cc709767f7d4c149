package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email, used as login
	Username     string    `json:"username" db:"username"`     // Unique username
	FirstName    string    `json:"first_name" db:"first_name"` // First name
	LastName     string    `json:"last_name" db:"last_name"`   // Last name
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	Avatar       *string   `json:"avatar" db:"avatar"`         // Stored avatar path, NULL when unset
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserRow is a user joined with the viewer's subscription flag.
type UserRow struct {
	UserDB
	IsSubscribed bool `db:"is_subscribed"`
}

// RegisterUser holds the fields accepted on sign up.
type RegisterUser struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// User is the public profile of a user.
// swagger:model User
type User struct {
	// example: vpupkin@yandex.ru
	Email string `json:"email"`
	// example: 1
	ID int64 `json:"id"`
	// example: vasya.pupkin
	Username string `json:"username"`
	// example: Вася
	FirstName string `json:"first_name"`
	// example: Иванов
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

// Subscription is a followed author together with a preview of their recipes.
// swagger:model Subscription
type Subscription struct {
	User
	Recipes      []RecipeMinified `json:"recipes"`
	RecipesCount int              `json:"recipes_count"`
}

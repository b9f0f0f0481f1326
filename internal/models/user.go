package models

// UserDB represents a row of the user_info table
type UserDB struct {
	UserID int64  `json:"user_id" db:"user_id"` // Primary key
	Name   string `json:"name" db:"name"`       // Display name
	Email  string `json:"email" db:"email"`     // Contact email
	Age    int    `json:"age" db:"age"`         // Age in years, used for bucketing
}

package entities

import (
	"time"
)

// User represents a registered user in the directory
type User struct {
	ID                int64     `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	Name              string    `json:"name" db:"name"`
	Ethnicity         string    `json:"ethnicity" db:"ethnicity"`
	Language          string    `json:"language" db:"language"`
	Hobby             string    `json:"hobby" db:"hobby"`
	Gender            string    `json:"gender" db:"gender"`
	Age               string    `json:"age" db:"age"`
	City              string    `json:"city" db:"city"`
	SexualOrientation string    `json:"sexual_orientation" db:"sexual_orientation"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the directory view of a user. The password hash never
// leaves the users collection through this shape.
type UserSummary struct {
	ID    primitive.ObjectID
	Name  string
	Email string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

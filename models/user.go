package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

// User is a portal account keyed by email.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// UserUpsertRequest carries the profile fields a client may set on PUT /user/:email.
type UserUpsertRequest struct {
	Name string `json:"name"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

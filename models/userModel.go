package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const RoleAdmin = "admin"

// User is an account document. Role is empty for regular customers and
// RoleAdmin for administrators; the role lives here, not in the token, so a
// promotion takes effect without reissuing tokens.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email    *string            `bson:"email" json:"email" validate:"required,email"`
	Photo    *string            `bson:"photo,omitempty" json:"photo,omitempty"`
	Password *string            `bson:"password,omitempty" json:"-"`
	Role     *string            `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role != nil && *u.Role == RoleAdmin
}

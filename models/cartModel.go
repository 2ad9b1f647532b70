package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a menu item placed in a customer's cart, owned by Email.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    *string            `bson:"email" json:"email" validate:"required,email"`
	MenuId   *string            `bson:"menuId" json:"menuId" validate:"required"`
	Name     *string            `bson:"name" json:"name"`
	Price    *float64           `bson:"price" json:"price"`
	Image    *string            `bson:"image" json:"image"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

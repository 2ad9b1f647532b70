package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a dish on the menu. Only admins may create, update or delete one.
type MenuItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category   *string            `bson:"category" json:"category" validate:"required"`
	Price      *float64           `bson:"price" json:"price" validate:"required"`
	Recipe     *string            `bson:"recipe" json:"recipe"`
	Image      *string            `bson:"image" json:"image"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}

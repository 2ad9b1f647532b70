package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names in the bistro database.
const (
	CollMenu    = "menu"
	CollReviews = "reviews"
	CollCarts   = "carts"
	CollUsers   = "users"
)

// ErrDuplicateKey is returned by InsertOne when the document collides with a
// unique index.
var ErrDuplicateKey = errors.New("store: duplicate key")

// InsertResult reports a completed insert. The JSON name matches what the
// MongoDB driver emits so clients see the familiar ack shape.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

// UpdateResult reports how many documents an update touched.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the document database behind every handler: find, insert, update
// and delete single documents in named collections by exact-match filter.
// Handlers hold a Store rather than a driver client so tests can substitute
// an in-memory implementation.
type Store interface {
	// Find returns all documents matching filter, in insertion order.
	// An empty filter returns the whole collection.
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)

	// FindOne returns the first matching document, or (nil, nil) when none
	// matches. Absence is not an error.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)

	// InsertOne stores doc as a new document and returns its assigned id.
	// Returns ErrDuplicateKey if doc collides with a unique index.
	InsertOne(ctx context.Context, collection string, doc interface{}) (*InsertResult, error)

	// UpdateOne sets exactly the fields in set on the first matching
	// document. Zero matches is a normal result, not an error.
	UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) (*UpdateResult, error)

	// DeleteOne removes the first matching document. Zero matches is a
	// normal result, not an error.
	DeleteOne(ctx context.Context, collection string, filter bson.M) (*DeleteResult, error)

	// EnsureUniqueIndex makes field a unique key for the collection.
	EnsureUniqueIndex(ctx context.Context, collection string, field string) error
}

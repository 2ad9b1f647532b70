package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store with the same semantics as MongoStore:
// insertion-order listing, exact-match filters, unique indexes. Tests inject
// it in place of a live database.
type MemoryStore struct {
	mu      sync.RWMutex
	colls   map[string][]bson.M
	uniques map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		colls:   make(map[string][]bson.M),
		uniques: make(map[string][]string),
	}
}

// toDoc normalizes doc through the bson codec so struct tags apply the same
// way they would on the wire.
func toDoc(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []bson.M{}
	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.colls[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, doc interface{}) (*InsertResult, error) {
	m, err := toDoc(doc)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range s.uniques[collection] {
		value, ok := m[field]
		if !ok {
			continue
		}
		for _, existing := range s.colls[collection] {
			if reflect.DeepEqual(existing[field], value) {
				return nil, ErrDuplicateKey
			}
		}
	}

	id, ok := m["_id"]
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	s.colls[collection] = append(s.colls[collection], m)
	return &InsertResult{InsertedID: id}, nil
}

func (s *MemoryStore) UpdateOne(_ context.Context, collection string, filter bson.M, set bson.M) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.colls[collection] {
		if !matches(doc, filter) {
			continue
		}
		modified := int64(0)
		for key, value := range set {
			if !reflect.DeepEqual(doc[key], value) {
				doc[key] = value
				modified = 1
			}
		}
		return &UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	return &UpdateResult{}, nil
}

func (s *MemoryStore) DeleteOne(_ context.Context, collection string, filter bson.M) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.colls[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.colls[collection] = append(docs[:i:i], docs[i+1:]...)
			return &DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{}, nil
}

func (s *MemoryStore) EnsureUniqueIndex(_ context.Context, collection string, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.uniques[collection] {
		if existing == field {
			return nil
		}
	}
	s.uniques[collection] = append(s.uniques[collection], field)
	return nil
}

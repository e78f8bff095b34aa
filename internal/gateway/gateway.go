package gateway

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Comparison operators supported by a constraint. Constraints form a
// conjunction; one ordering key may be applied on top.
type Op string

const (
	OpEq  Op = "=="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Constraint is a single field predicate.
type Constraint struct {
	Field string
	Op    Op
	Value interface{}
}

// Query is the read shape the gateway accepts: WHERE conjunction plus one
// ORDER BY key.
type Query struct {
	Constraints []Constraint
	OrderBy     string
	Descending  bool
}

// Where appends an equality/range constraint and returns the query for
// chaining.
func (q Query) Where(field string, op Op, value interface{}) Query {
	q.Constraints = append(q.Constraints, Constraint{Field: field, Op: op, Value: value})
	return q
}

// RawDocument is one document as read from the store. OwnerID carries the
// parent user id for collection-group reads; it is empty for top-level
// collections.
type RawDocument struct {
	ID      string
	OwnerID string
	Fields  bson.M
}

// SessionChecker reports whether an authenticated session is active. The
// gateway fails every call closed when it reports false.
type SessionChecker interface {
	SessionActive() bool
}

// Gateway is the query capability over the external document store. Reads
// are never retried here; failures propagate to the caller.
type Gateway interface {
	// FetchCollection reads a top-level collection.
	FetchCollection(ctx context.Context, name string, q Query) ([]RawDocument, error)

	// FetchGroup reads a collection group: same-named sub-collections
	// nested under many owners, returned as one sequence with OwnerID set.
	FetchGroup(ctx context.Context, name string, q Query) ([]RawDocument, error)

	// FetchOne reads a single document by id. Returns (nil, nil) when the
	// document does not exist.
	FetchOne(ctx context.Context, name, id string) (*RawDocument, error)

	// UpdateOne applies a partial update to one owned document by id. A
	// document that does not exist is left uncreated.
	UpdateOne(ctx context.Context, name, ownerID, id string, patch bson.M) error

	// UpsertOne applies a partial update to one document by id, creating
	// it when absent. Used for singleton config documents.
	UpsertOne(ctx context.Context, name, id string, patch bson.M) error

	SessionChecker
}

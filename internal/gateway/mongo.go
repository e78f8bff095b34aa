package gateway

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGateway implements Gateway against a MongoDB database. Collection
// groups are stored flat: each grouped document carries an owner_id field
// holding its parent user id, surfaced as RawDocument.OwnerID.
type MongoGateway struct {
	db      *mongo.Database
	session SessionChecker
}

func NewMongoGateway(db *mongo.Database, session SessionChecker) *MongoGateway {
	return &MongoGateway{db: db, session: session}
}

func (g *MongoGateway) SessionActive() bool {
	return g.session.SessionActive()
}

func (g *MongoGateway) FetchCollection(ctx context.Context, name string, q Query) ([]RawDocument, error) {
	return g.find(ctx, name, q)
}

func (g *MongoGateway) FetchGroup(ctx context.Context, name string, q Query) ([]RawDocument, error) {
	return g.find(ctx, name, q)
}

func (g *MongoGateway) FetchOne(ctx context.Context, name, id string) (*RawDocument, error) {
	if !g.session.SessionActive() {
		return nil, ErrUnauthenticated
	}
	var fields bson.M
	err := g.db.Collection(name).FindOne(ctx, bson.M{"_id": id}).Decode(&fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &RemoteReadError{Op: "fetchOne", Collection: name, Err: err}
	}
	return asRawDocument(fields), nil
}

func (g *MongoGateway) UpdateOne(ctx context.Context, name, ownerID, id string, patch bson.M) error {
	if !g.session.SessionActive() {
		return ErrUnauthenticated
	}
	filter := bson.M{"_id": id}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range patch {
		set[k] = v
	}
	_, err := g.db.Collection(name).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return &RemoteReadError{Op: "updateOne", Collection: name, Err: err}
	}
	return nil
}

func (g *MongoGateway) UpsertOne(ctx context.Context, name, id string, patch bson.M) error {
	if !g.session.SessionActive() {
		return ErrUnauthenticated
	}
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range patch {
		set[k] = v
	}
	opts := options.Update().SetUpsert(true)
	_, err := g.db.Collection(name).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return &RemoteReadError{Op: "upsertOne", Collection: name, Err: err}
	}
	return nil
}

func (g *MongoGateway) find(ctx context.Context, name string, q Query) ([]RawDocument, error) {
	if !g.session.SessionActive() {
		return nil, ErrUnauthenticated
	}
	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	cur, err := g.db.Collection(name).Find(ctx, buildFilter(q.Constraints), opts)
	if err != nil {
		return nil, &RemoteReadError{Op: "fetch", Collection: name, Err: err}
	}
	defer cur.Close(ctx)

	var docs []RawDocument
	for cur.Next(ctx) {
		var fields bson.M
		if err := cur.Decode(&fields); err != nil {
			return nil, &RemoteReadError{Op: "decode", Collection: name, Err: err}
		}
		docs = append(docs, *asRawDocument(fields))
	}
	if err := cur.Err(); err != nil {
		return nil, &RemoteReadError{Op: "cursor", Collection: name, Err: err}
	}
	return docs, nil
}

func buildFilter(constraints []Constraint) bson.M {
	filter := bson.M{}
	for _, c := range constraints {
		switch c.Op {
		case OpEq:
			filter[c.Field] = c.Value
		case OpGte, OpLte:
			ranges, ok := filter[c.Field].(bson.M)
			if !ok {
				ranges = bson.M{}
				filter[c.Field] = ranges
			}
			if c.Op == OpGte {
				ranges["$gte"] = c.Value
			} else {
				ranges["$lte"] = c.Value
			}
		}
	}
	return filter
}

func asRawDocument(fields bson.M) *RawDocument {
	doc := &RawDocument{Fields: fields}
	switch id := fields["_id"].(type) {
	case string:
		doc.ID = id
	case primitive.ObjectID:
		doc.ID = id.Hex()
	}
	if owner, ok := fields["owner_id"].(string); ok {
		doc.OwnerID = owner
	}
	delete(fields, "_id")
	delete(fields, "owner_id")
	return doc
}

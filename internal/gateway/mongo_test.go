package gateway

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	q := Query{}.
		Where("type", OpEq, "test").
		Where("purchaseDate", OpGte, start).
		Where("purchaseDate", OpLte, end)

	filter := buildFilter(q.Constraints)

	if filter["type"] != "test" {
		t.Errorf("Expected equality constraint, got %+v", filter)
	}
	ranges, ok := filter["purchaseDate"].(bson.M)
	if !ok {
		t.Fatalf("Expected range map for purchaseDate, got %T", filter["purchaseDate"])
	}
	if ranges["$gte"] != start || ranges["$lte"] != end {
		t.Errorf("Expected both range bounds merged, got %+v", ranges)
	}
}

func TestBuildFilterEmpty(t *testing.T) {
	filter := buildFilter(nil)
	if len(filter) != 0 {
		t.Errorf("Expected empty filter, got %+v", filter)
	}
}

func TestAsRawDocument(t *testing.T) {
	objID := primitive.NewObjectID()

	testCases := []struct {
		name      string
		fields    bson.M
		wantID    string
		wantOwner string
	}{
		{"string id", bson.M{"_id": "doc-1", "owner_id": "u1", "amount": int64(100)}, "doc-1", "u1"},
		{"object id", bson.M{"_id": objID}, objID.Hex(), ""},
		{"no id", bson.M{"amount": int64(5)}, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := asRawDocument(tc.fields)
			if doc.ID != tc.wantID {
				t.Errorf("Expected id %q, got %q", tc.wantID, doc.ID)
			}
			if doc.OwnerID != tc.wantOwner {
				t.Errorf("Expected owner %q, got %q", tc.wantOwner, doc.OwnerID)
			}
			if _, ok := doc.Fields["_id"]; ok {
				t.Error("Expected _id stripped from fields")
			}
			if _, ok := doc.Fields["owner_id"]; ok {
				t.Error("Expected owner_id stripped from fields")
			}
		})
	}
}

package normalize

import (
	"math"
	"testing"
	"time"

	"admin-service/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPurchaseAmountConversion(t *testing.T) {
	testCases := []struct {
		name   string
		amount interface{}
		want   float64
	}{
		{"ten thousand paise", int64(10000), 100.0},
		{"twenty five thousand paise", int32(25000), 250.0},
		{"five thousand paise", 5000, 50.0},
		{"one paisa", int64(1), 0.01},
		{"zero", int64(0), 0.0},
		{"absent amount", nil, 0.0},
		{"float amount", float64(9999), 99.99},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := bson.M{"type": "test"}
			if tc.amount != nil {
				fields["amount"] = tc.amount
			}
			p := Purchase(gateway.RawDocument{ID: "p1", Fields: fields})
			if math.Abs(p.Amount-tc.want) > 1e-9 {
				t.Errorf("Expected amount %.2f, got %.2f", tc.want, p.Amount)
			}
		})
	}
}

func TestPurchaseTypeRetainedVerbatim(t *testing.T) {
	testCases := []struct {
		name     string
		fields   bson.M
		wantType string
	}{
		{"test purchase", bson.M{"type": "test"}, "test"},
		{"interview booking", bson.M{"type": "interview"}, "interview"},
		{"unknown type kept", bson.M{"type": "bundle"}, "bundle"},
		{"missing type stays empty", bson.M{}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Purchase(gateway.RawDocument{ID: "p1", Fields: tc.fields})
			if p.Type != tc.wantType {
				t.Errorf("Expected type %q, got %q", tc.wantType, p.Type)
			}
		})
	}
}

func TestPurchaseTimestampCoercion(t *testing.T) {
	when := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		value interface{}
		want  *time.Time
	}{
		{"mongo datetime", primitive.NewDateTimeFromTime(when), &when},
		{"go time", when, &when},
		{"rfc3339 string", when.Format(time.RFC3339), &when},
		{"absent", nil, nil},
		{"garbage string", "not-a-date", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := bson.M{"type": "test"}
			if tc.value != nil {
				fields["purchaseDate"] = tc.value
			}
			p := Purchase(gateway.RawDocument{ID: "p1", Fields: fields})
			if tc.want == nil {
				if p.PurchaseDate != nil {
					t.Errorf("Expected nil purchase date, got %v", p.PurchaseDate)
				}
				return
			}
			if p.PurchaseDate == nil || !p.PurchaseDate.Equal(*tc.want) {
				t.Errorf("Expected purchase date %v, got %v", tc.want, p.PurchaseDate)
			}
		})
	}
}

func TestPurchaseOwnerBecomesUserID(t *testing.T) {
	p := Purchase(gateway.RawDocument{ID: "p1", OwnerID: "user-42", Fields: bson.M{"type": "interview"}})
	if p.UserID != "user-42" {
		t.Errorf("Expected user id user-42, got %q", p.UserID)
	}
}

func TestTestResultDefaults(t *testing.T) {
	r := TestResult(gateway.RawDocument{ID: "r1", Fields: bson.M{}})
	if r.Percentage != 0 || r.QuestionsTotal != 0 || r.TimeSpentSeconds != 0 {
		t.Errorf("Expected zero defaults, got %+v", r)
	}
	if r.Timestamp != nil {
		t.Errorf("Expected nil timestamp, got %v", r.Timestamp)
	}
}

func TestTestResultAnswersKeepOrder(t *testing.T) {
	fields := bson.M{
		"answers": bson.A{
			bson.M{"question": "Q1", "userAnswer": "A", "isCorrect": true},
			bson.M{"questionText": "Q2", "userAnswer": "B", "correctAnswer": "C", "isCorrect": false},
		},
	}
	r := TestResult(gateway.RawDocument{ID: "r1", Fields: fields})
	if len(r.Answers) != 2 {
		t.Fatalf("Expected 2 answers, got %d", len(r.Answers))
	}
	if r.Answers[0].QuestionText != "Q1" || !r.Answers[0].IsCorrect {
		t.Errorf("Unexpected first answer: %+v", r.Answers[0])
	}
	if r.Answers[1].CorrectAnswer != "C" || r.Answers[1].IsCorrect {
		t.Errorf("Unexpected second answer: %+v", r.Answers[1])
	}
}

func TestEmbeddedIdentityProbing(t *testing.T) {
	testCases := []struct {
		name      string
		fields    bson.M
		wantName  string
		wantEmail string
		wantPhone string
	}{
		{
			"nested userDetails wins",
			bson.M{
				"userDetails": bson.M{"name": "Ravi", "email": "ravi@example.com", "phone": "12345"},
				"userName":    "ignored",
			},
			"Ravi", "ravi@example.com", "12345",
		},
		{
			"flat legacy spellings",
			bson.M{"userName": "Meena", "userEmail": "meena@example.com", "userPhone": "67890"},
			"Meena", "meena@example.com", "67890",
		},
		{
			"student spelling",
			bson.M{"studentName": "Kiran", "email": "kiran@example.com"},
			"Kiran", "kiran@example.com", "",
		},
		{
			"nothing embedded stays empty",
			bson.M{},
			"", "", "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := TestResult(gateway.RawDocument{ID: "r1", Fields: tc.fields})
			if r.EmbeddedName != tc.wantName {
				t.Errorf("Expected name %q, got %q", tc.wantName, r.EmbeddedName)
			}
			if r.EmbeddedEmail != tc.wantEmail {
				t.Errorf("Expected email %q, got %q", tc.wantEmail, r.EmbeddedEmail)
			}
			if r.EmbeddedPhone != tc.wantPhone {
				t.Errorf("Expected phone %q, got %q", tc.wantPhone, r.EmbeddedPhone)
			}
		})
	}
}

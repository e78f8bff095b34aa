// Package normalize maps raw store documents of a known source shape into
// canonical typed records. It is the single place allowed to probe loosely
// typed documents for alternative field spellings.
package normalize

import (
	"time"

	"admin-service/internal/gateway"
	"admin-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase converts one raw purchase document. The integer paise amount is
// divided by 100 here, exactly once; an absent amount normalizes to 0. An
// unknown or missing type is kept verbatim, not defaulted, so the type
// filter can surface data-quality gaps.
func Purchase(doc gateway.RawDocument) models.Purchase {
	f := doc.Fields
	return models.Purchase{
		ID:            doc.ID,
		UserID:        doc.OwnerID,
		Type:          str(f, "type"),
		Amount:        paiseToRupees(f["amount"]),
		PurchaseDate:  instant(f["purchaseDate"]),
		Status:        str(f, "status"),
		TestID:        str(f, "testId"),
		TestName:      str(f, "testName"),
		BookingDate:   instant(f["bookingDate"]),
		ScheduledDate: instant(f["scheduledDate"]),
		MeetLink:      str(f, "meetLink"),
		Notes:         str(f, "notes"),
		PaymentID:     str(f, "paymentId"),
		UserDetails:   embeddedIdentity(f),
	}
}

// TestResult converts one raw test result document. Timestamps that are
// absent stay nil rather than failing; counters default to zero. The
// embedded identity fields feed the resolver's first fallback rung.
func TestResult(doc gateway.RawDocument) models.TestResult {
	f := doc.Fields
	r := models.TestResult{
		ID:                 doc.ID,
		UserID:             str(f, "userId"),
		TestID:             str(f, "testId"),
		TestName:           str(f, "testName"),
		Percentage:         num(f["percentage"]),
		QuestionsTotal:     intval(f["questionsTotal"]),
		QuestionsAttempted: intval(f["questionsAttempted"]),
		QuestionsCorrect:   intval(f["questionsCorrect"]),
		TimeSpentSeconds:   intval(f["timeSpent"]),
		ResultStatus:       str(f, "resultStatus"),
		Timestamp:          instant(f["timestamp"]),
		Answers:            answers(f["answers"]),
	}
	if r.UserID == "" {
		r.UserID = doc.OwnerID
	}
	id := embeddedIdentity(f)
	r.EmbeddedName = id.Name
	r.EmbeddedEmail = id.Email
	r.EmbeddedPhone = id.Phone
	return r
}

// Identity extracts whatever identity fields a raw document carries, probing
// the nested userDetails map first, then the flat spellings the source used
// over time. Missing fields stay empty; sentinels are the resolver's job.
func Identity(f bson.M) models.UserIdentity {
	return embeddedIdentity(f)
}

// Instant coerces a raw timestamp value to a *time.Time, nil when absent or
// unrecognised.
func Instant(v interface{}) *time.Time {
	return instant(v)
}

func embeddedIdentity(f bson.M) models.UserIdentity {
	var id models.UserIdentity
	if details, ok := f["userDetails"].(bson.M); ok {
		id.Name = str(details, "name")
		id.Email = str(details, "email")
		id.Phone = str(details, "phone")
	}
	if id.Name == "" {
		id.Name = firstStr(f, "name", "userName", "studentName")
	}
	if id.Email == "" {
		id.Email = firstStr(f, "email", "userEmail")
	}
	if id.Phone == "" {
		id.Phone = firstStr(f, "phone", "userPhone", "mobile")
	}
	return id
}

func answers(v interface{}) []models.AnswerRecord {
	items, ok := v.(bson.A)
	if !ok {
		return nil
	}
	out := make([]models.AnswerRecord, 0, len(items))
	for _, item := range items {
		entry, ok := item.(bson.M)
		if !ok {
			continue
		}
		out = append(out, models.AnswerRecord{
			QuestionText:  firstStr(entry, "questionText", "question"),
			UserAnswer:    str(entry, "userAnswer"),
			CorrectAnswer: str(entry, "correctAnswer"),
			IsCorrect:     boolean(entry["isCorrect"]) || boolean(entry["correct"]),
		})
	}
	return out
}

func paiseToRupees(v interface{}) float64 {
	return num(v) / 100
}

// instant coerces the store's timestamp representations to a *time.Time,
// returning nil for anything absent or unrecognised.
func instant(v interface{}) *time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		tt := t.Time()
		return &tt
	case time.Time:
		return &t
	case *time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return &parsed
		}
	}
	return nil
}

func str(f bson.M, key string) string {
	s, _ := f[key].(string)
	return s
}

func firstStr(f bson.M, keys ...string) string {
	for _, k := range keys {
		if s := str(f, k); s != "" {
			return s
		}
	}
	return ""
}

func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func intval(v interface{}) int {
	return int(num(v))
}

func boolean(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

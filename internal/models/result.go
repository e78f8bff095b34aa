package models

import "time"

// Result status values as stored. Matching elsewhere is exact and
// case-sensitive; see aggregate.CategoryPerformance.
const (
	ResultStatusPass = "pass"
	ResultStatusFail = "fail"
)

// Sentinel values substituted when an identity field cannot be resolved.
const (
	UnknownName    = "Unknown"
	UnavailableVal = "N/A"
)

// UserIdentity is a best-effort view synthesized by the identity resolver.
// It is never persisted back to the store.
type UserIdentity struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Unresolved returns an identity with every field set to its sentinel.
func Unresolved() UserIdentity {
	return UserIdentity{Name: UnknownName, Email: UnavailableVal, Phone: UnavailableVal}
}

// AnswerRecord is one answered question inside a test result, kept in the
// order it was answered.
type AnswerRecord struct {
	QuestionText  string `bson:"question_text,omitempty" json:"questionText,omitempty"`
	UserAnswer    string `bson:"user_answer,omitempty" json:"userAnswer,omitempty"`
	CorrectAnswer string `bson:"correct_answer,omitempty" json:"correctAnswer,omitempty"`
	IsCorrect     bool   `bson:"is_correct" json:"isCorrect"`
}

// TestResult is the canonical test result record. Immutable once created;
// this engine only reads it and decorates it with a resolved identity.
type TestResult struct {
	ID                 string         `bson:"_id,omitempty" json:"id"`
	UserID             string         `bson:"user_id,omitempty" json:"userId,omitempty"`
	TestID             string         `bson:"test_id" json:"testId"`
	TestName           string         `bson:"test_name" json:"testName"`
	Percentage         float64        `bson:"percentage" json:"percentage"`
	QuestionsTotal     int            `bson:"questions_total" json:"questionsTotal"`
	QuestionsAttempted int            `bson:"questions_attempted" json:"questionsAttempted"`
	QuestionsCorrect   int            `bson:"questions_correct" json:"questionsCorrect"`
	TimeSpentSeconds   int            `bson:"time_spent_seconds" json:"timeSpentSeconds"`
	ResultStatus       string         `bson:"result_status" json:"resultStatus"`
	Timestamp          *time.Time     `bson:"timestamp" json:"timestamp"`
	Answers            []AnswerRecord `bson:"answers,omitempty" json:"answers,omitempty"`
	UserDetails        UserIdentity   `bson:"user_details" json:"userDetails"`

	// Identity fields as embedded on the raw document, first rung of the
	// resolver's fallback chain. Not part of the canonical output shape.
	EmbeddedName  string `bson:"-" json:"-"`
	EmbeddedEmail string `bson:"-" json:"-"`
	EmbeddedPhone string `bson:"-" json:"-"`
}

// CategorySummary is the per-test roll-up, recomputed in full on every
// request and never persisted.
type CategorySummary struct {
	TestID         string  `json:"testId"`
	TestName       string  `json:"testName"`
	Attempts       int     `json:"attempts"`
	AvgScore       float64 `json:"avgScore"`
	HighestScore   float64 `json:"highestScore"`
	LowestScore    float64 `json:"lowestScore"`
	AvgTimeSeconds float64 `json:"avgTimeSeconds"`
	PassCount      int     `json:"passCount"`
	FailCount      int     `json:"failCount"`
}

package models

import "time"

// Purchase type discriminator values as stored. An unknown or missing type
// is retained verbatim so filters can surface data-quality gaps.
const (
	PurchaseTypeTest      = "test"
	PurchaseTypeInterview = "interview"
)

// Booking status values for the interview variant.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Purchase is the canonical purchase record. Amount is in rupees; the
// paise-to-rupee conversion happens once, in the normalizer, and stored
// documents are never mutated with the converted figure.
type Purchase struct {
	ID            string       `bson:"_id,omitempty" json:"id"`
	UserID        string       `bson:"user_id" json:"userId"`
	Type          string       `bson:"type" json:"type"`
	Amount        float64      `bson:"amount" json:"amount"`
	PurchaseDate  *time.Time   `bson:"purchase_date" json:"purchaseDate"`
	Status        string       `bson:"status,omitempty" json:"status,omitempty"`
	TestID        string       `bson:"test_id,omitempty" json:"testId,omitempty"`
	TestName      string       `bson:"test_name,omitempty" json:"testName,omitempty"`
	BookingDate   *time.Time   `bson:"booking_date,omitempty" json:"bookingDate,omitempty"`
	ScheduledDate *time.Time   `bson:"scheduled_date,omitempty" json:"scheduledDate,omitempty"`
	MeetLink      string       `bson:"meet_link,omitempty" json:"meetLink,omitempty"`
	Notes         string       `bson:"notes,omitempty" json:"notes,omitempty"`
	PaymentID     string       `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	UserDetails   UserIdentity `bson:"user_details" json:"userDetails"`
}

// BookingPatch is the only mutation this engine performs: a partial update
// of one interview booking document.
type BookingPatch struct {
	Status        string     `json:"status,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	MeetLink      string     `json:"meetLink,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// RevenueMetrics is the date-windowed revenue summary. All figures are in
// rupees. Purchases with an unrecognised type count toward the totals but
// toward neither partition.
type RevenueMetrics struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TestRevenue        float64 `json:"testRevenue"`
	InterviewRevenue   float64 `json:"interviewRevenue"`
	TotalPurchases     int     `json:"totalPurchases"`
	TestPurchases      int     `json:"testPurchases"`
	InterviewPurchases int     `json:"interviewPurchases"`
}

// TrendPoint is one calendar-day bucket of the revenue trend series.
type TrendPoint struct {
	Date             time.Time `json:"date"`
	TotalRevenue     float64   `json:"totalRevenue"`
	TestRevenue      float64   `json:"testRevenue"`
	InterviewRevenue float64   `json:"interviewRevenue"`
	Purchases        int       `json:"purchases"`
}

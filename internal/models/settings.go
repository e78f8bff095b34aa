package models

import "time"

// AppSettings is the single systemConfig/appSettings document controlling
// whether new interview bookings are accepted.
type AppSettings struct {
	InterviewBookingsEnabled bool       `bson:"interviewBookingsEnabled" json:"interviewBookingsEnabled"`
	InterviewBookingsMessage string     `bson:"interviewBookingsMessage" json:"interviewBookingsMessage"`
	LastUpdated              *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// DefaultSettings mirrors the values written when the settings document does
// not exist yet: bookings enabled, no message.
func DefaultSettings() AppSettings {
	return AppSettings{InterviewBookingsEnabled: true}
}

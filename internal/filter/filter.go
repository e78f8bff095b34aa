// Package filter applies free-text, status and date-window predicates to
// in-memory record sets. Pure and stateless; the predicates commute, so the
// result set does not depend on application order.
package filter

import (
	"strings"
	"time"

	"admin-service/internal/models"
)

// Criteria combines the three independent predicates by logical AND.
// Status "all" and WindowDays 0 are pass-through wildcards.
type Criteria struct {
	Search     string
	Status     string
	WindowDays int
	Now        time.Time
}

// Purchases filters a purchase/booking list. Free text matches the resolved
// identity fields and the testId, case-insensitively; an absent field never
// matches. The date predicate checks bookingDate for interview bookings and
// purchaseDate otherwise.
func Purchases(in []models.Purchase, c Criteria) []models.Purchase {
	cutoff := c.cutoff()
	out := make([]models.Purchase, 0, len(in))
	for _, p := range in {
		if !matchesText(c.Search, p.UserDetails.Name, p.UserDetails.Email, p.UserDetails.Phone, p.TestID) {
			continue
		}
		if c.Status != "" && c.Status != "all" && p.Status != c.Status {
			continue
		}
		date := p.PurchaseDate
		if p.Type == models.PurchaseTypeInterview {
			date = p.BookingDate
		}
		if !withinWindow(date, cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Results filters a test result list against the same criteria, matching
// free text on the resolved identity and the test name.
func Results(in []models.TestResult, c Criteria) []models.TestResult {
	cutoff := c.cutoff()
	out := make([]models.TestResult, 0, len(in))
	for _, r := range in {
		if !matchesText(c.Search, r.UserDetails.Name, r.UserDetails.Email, r.UserDetails.Phone, r.TestName) {
			continue
		}
		if c.Status != "" && c.Status != "all" && r.ResultStatus != c.Status {
			continue
		}
		if !withinWindow(r.Timestamp, cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// cutoff returns the inclusive lower bound of the window, or nil when the
// window is "all".
func (c Criteria) cutoff() *time.Time {
	if c.WindowDays <= 0 {
		return nil
	}
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}
	t := now.AddDate(0, 0, -c.WindowDays)
	return &t
}

// withinWindow is inclusive at the boundary; a record with no date fails
// whenever a window is active.
func withinWindow(date, cutoff *time.Time) bool {
	if cutoff == nil {
		return true
	}
	if date == nil {
		return false
	}
	return !date.Before(*cutoff)
}

func matchesText(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

package filter

import (
	"testing"
	"time"

	"admin-service/internal/models"
)

func datePtr(t time.Time) *time.Time { return &t }

func sampleBookings(now time.Time) []models.Purchase {
	return []models.Purchase{
		{
			ID: "b1", Type: "interview", Status: "pending",
			BookingDate: datePtr(now.AddDate(0, 0, -2)),
			UserDetails: models.UserIdentity{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210"},
		},
		{
			ID: "b2", Type: "interview", Status: "confirmed",
			BookingDate: datePtr(now.AddDate(0, 0, -20)),
			UserDetails: models.UserIdentity{Name: "Vikram Shah", Email: "vikram@example.com", Phone: "9123456789"},
		},
		{
			ID: "b3", Type: "interview", Status: "pending",
			BookingDate: nil,
			UserDetails: models.UserIdentity{Name: "Asha Kumar", Email: "kumar@example.com", Phone: "9000000000"},
		},
	}
}

func TestPurchasesSearchCaseInsensitive(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name   string
		search string
		want   []string
	}{
		{"lowercase name", "asha", []string{"b1", "b3"}},
		{"uppercase term", "VIKRAM", []string{"b2"}},
		{"email fragment", "kumar@", []string{"b3"}},
		{"phone fragment", "987654", []string{"b1"}},
		{"no match", "zzz", nil},
		{"empty matches all", "", []string{"b1", "b2", "b3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Purchases(sampleBookings(now), Criteria{Search: tc.search})
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d matches, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("Match %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestPurchasesStatusWildcard(t *testing.T) {
	now := time.Now()
	all := Purchases(sampleBookings(now), Criteria{Status: "all"})
	if len(all) != 3 {
		t.Errorf(`Expected status "all" to pass everything, got %d`, len(all))
	}
	pending := Purchases(sampleBookings(now), Criteria{Status: "pending"})
	if len(pending) != 2 {
		t.Errorf("Expected 2 pending, got %d", len(pending))
	}
}

func TestPurchasesDateWindowInclusiveBoundary(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	boundary := now.AddDate(0, 0, -7) // exactly now - 7 days at midnight

	in := []models.Purchase{{
		ID: "b1", Type: "interview", BookingDate: &boundary,
		UserDetails: models.UserIdentity{Name: "Edge"},
	}}

	got := Purchases(in, Criteria{WindowDays: 7, Now: now})
	if len(got) != 1 {
		t.Errorf("Expected record dated exactly now-7d to be included, got %d matches", len(got))
	}
}

func TestPurchasesMissingDateFailsActiveWindow(t *testing.T) {
	now := time.Now()
	got := Purchases(sampleBookings(now), Criteria{WindowDays: 30, Now: now})
	for _, p := range got {
		if p.ID == "b3" {
			t.Error("Expected undated booking excluded under an active window")
		}
	}
	all := Purchases(sampleBookings(now), Criteria{})
	if len(all) != 3 {
		t.Errorf(`Expected undated booking kept under the "all" window, got %d`, len(all))
	}
}

func TestPurchasesPredicatesCommute(t *testing.T) {
	now := time.Now()
	c := Criteria{Search: "asha", Status: "pending", WindowDays: 7, Now: now}

	combined := Purchases(sampleBookings(now), c)

	// Apply the same predicates one at a time, in a different order.
	staged := Purchases(sampleBookings(now), Criteria{WindowDays: 7, Now: now})
	staged = Purchases(staged, Criteria{Status: "pending"})
	staged = Purchases(staged, Criteria{Search: "asha"})

	if len(combined) != len(staged) {
		t.Fatalf("Expected identical sets, got %d vs %d", len(combined), len(staged))
	}
	for i := range combined {
		if combined[i].ID != staged[i].ID {
			t.Errorf("Order-dependent filtering: %s vs %s", combined[i].ID, staged[i].ID)
		}
	}
}

func TestResultsFiltering(t *testing.T) {
	now := time.Now()
	results := []models.TestResult{
		{
			ID: "r1", TestName: "Aptitude", ResultStatus: "pass",
			Timestamp:   datePtr(now.AddDate(0, 0, -1)),
			UserDetails: models.UserIdentity{Name: "Asha", Email: "asha@example.com", Phone: "N/A"},
		},
		{
			ID: "r2", TestName: "Reasoning", ResultStatus: "fail",
			Timestamp:   datePtr(now.AddDate(0, 0, -100)),
			UserDetails: models.UserIdentity{Name: "Vikram", Email: "vikram@example.com", Phone: "N/A"},
		},
		{
			ID: "r3", TestName: "Aptitude", ResultStatus: "pass",
			Timestamp:   nil,
			UserDetails: models.UserIdentity{Name: "Meena", Email: "meena@example.com", Phone: "N/A"},
		},
	}

	got := Results(results, Criteria{Search: "aptitude", Status: "pass", WindowDays: 30, Now: now})
	if len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("Expected only r1, got %+v", got)
	}

	got = Results(results, Criteria{Status: "all"})
	if len(got) != 3 {
		t.Errorf(`Expected status "all" wildcard, got %d`, len(got))
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"admin-service/internal/aggregate"
	"admin-service/internal/gateway"
	"admin-service/internal/identity"
	"admin-service/internal/models"
	"admin-service/internal/normalize"

	"go.mongodb.org/mongo-driver/bson"
)

// Store collections this engine reads and writes.
const (
	purchasesCollection = "purchases"
	resultsCollection   = "testResults"
	configCollection    = "systemConfig"
	settingsDocID       = "appSettings"
)

var (
	ErrUnknownBookingStatus = errors.New("unknown booking status")
	ErrUnknownResultStatus  = errors.New("unknown result status")
)

var bookingStatuses = map[string]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusCompleted: true,
	models.BookingStatusCancelled: true,
}

// ResultFilters is the constraint set pushed down on test result reads.
// Nil/zero members are skipped.
type ResultFilters struct {
	TestID   string
	Start    *time.Time
	End      *time.Time
	MinScore *float64
	MaxScore *float64
	Status   string
}

// AdminService is the reporting engine facade. It holds no state between
// requests; every derived view is recomputed from a fresh snapshot.
type AdminService struct {
	gw       gateway.Gateway
	resolver *identity.Resolver
}

func NewAdminService(gw gateway.Gateway) *AdminService {
	return &AdminService{gw: gw, resolver: identity.NewResolver(gw)}
}

// ListPurchases reads the purchases group, newest first, optionally
// constrained to one type. Interview bookings are ordered by booking date,
// everything else by purchase date.
func (s *AdminService) ListPurchases(ctx context.Context, typeFilter string) ([]models.Purchase, error) {
	q := gateway.Query{OrderBy: "purchaseDate", Descending: true}
	if typeFilter != "" && typeFilter != "all" {
		q = q.Where("type", gateway.OpEq, typeFilter)
		if typeFilter == models.PurchaseTypeInterview {
			q.OrderBy = "bookingDate"
		}
	}
	docs, err := s.gw.FetchGroup(ctx, purchasesCollection, q)
	if err != nil {
		return nil, err
	}
	purchases := make([]models.Purchase, 0, len(docs))
	for _, doc := range docs {
		purchases = append(purchases, normalize.Purchase(doc))
	}
	return purchases, nil
}

// ListTestResults reads test results with constraint pushdown and decorates
// each record with a resolved identity. The decoration is never written
// back to the store.
func (s *AdminService) ListTestResults(ctx context.Context, f ResultFilters) ([]models.TestResult, error) {
	q := gateway.Query{OrderBy: "timestamp", Descending: true}
	if f.TestID != "" {
		q = q.Where("testId", gateway.OpEq, f.TestID)
	}
	if f.Start != nil {
		q = q.Where("timestamp", gateway.OpGte, *f.Start)
	}
	if f.End != nil {
		q = q.Where("timestamp", gateway.OpLte, *f.End)
	}
	if f.MinScore != nil {
		q = q.Where("percentage", gateway.OpGte, *f.MinScore)
	}
	if f.MaxScore != nil {
		q = q.Where("percentage", gateway.OpLte, *f.MaxScore)
	}
	if f.Status != "" && f.Status != "all" {
		if f.Status != models.ResultStatusPass && f.Status != models.ResultStatusFail {
			return nil, ErrUnknownResultStatus
		}
		q = q.Where("resultStatus", gateway.OpEq, f.Status)
	}
	docs, err := s.gw.FetchCollection(ctx, resultsCollection, q)
	if err != nil {
		return nil, err
	}
	results := make([]models.TestResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, normalize.TestResult(doc))
	}
	s.resolver.Decorate(ctx, results)
	return results, nil
}

// ComputeRevenueMetrics derives the revenue summary for the inclusive
// window [start, end]. The window is pushed to the store and re-checked by
// the aggregator.
func (s *AdminService) ComputeRevenueMetrics(ctx context.Context, start, end time.Time) (models.RevenueMetrics, error) {
	q := gateway.Query{OrderBy: "purchaseDate", Descending: true}.
		Where("purchaseDate", gateway.OpGte, start).
		Where("purchaseDate", gateway.OpLte, end)
	docs, err := s.gw.FetchGroup(ctx, purchasesCollection, q)
	if err != nil {
		return models.RevenueMetrics{}, err
	}
	purchases := make([]models.Purchase, 0, len(docs))
	for _, doc := range docs {
		purchases = append(purchases, normalize.Purchase(doc))
	}
	return aggregate.Revenue(purchases, start, end), nil
}

// ComputeCategoryPerformance groups all test results by testId and rolls
// each group up.
func (s *AdminService) ComputeCategoryPerformance(ctx context.Context) ([]models.CategorySummary, error) {
	results, err := s.ListTestResults(ctx, ResultFilters{})
	if err != nil {
		return nil, err
	}
	return aggregate.CategoryPerformance(results), nil
}

// ComputeTrendSeries buckets purchase revenue into the last days calendar
// days, zero-filled.
func (s *AdminService) ComputeTrendSeries(ctx context.Context, days int) ([]models.TrendPoint, error) {
	purchases, err := s.ListPurchases(ctx, "")
	if err != nil {
		return nil, err
	}
	return aggregate.TrendSeries(purchases, days, time.Now()), nil
}

// UpdateBookingStatus patches one interview booking document by id. This is
// the engine's only mutation path and composes with no read.
func (s *AdminService) UpdateBookingStatus(ctx context.Context, userID, purchaseID string, patch models.BookingPatch) error {
	if patch.Status != "" && !bookingStatuses[patch.Status] {
		return ErrUnknownBookingStatus
	}
	set := bson.M{}
	if patch.Status != "" {
		set["status"] = patch.Status
	}
	if patch.ScheduledDate != nil {
		set["scheduledDate"] = *patch.ScheduledDate
	}
	if patch.MeetLink != "" {
		set["meetLink"] = patch.MeetLink
	}
	if patch.Notes != "" {
		set["notes"] = patch.Notes
	}
	return s.gw.UpdateOne(ctx, purchasesCollection, userID, purchaseID, set)
}

// GetSettings reads the app settings document, falling back to defaults
// when it does not exist yet.
func (s *AdminService) GetSettings(ctx context.Context) (models.AppSettings, error) {
	doc, err := s.gw.FetchOne(ctx, configCollection, settingsDocID)
	if err != nil {
		return models.AppSettings{}, err
	}
	if doc == nil {
		return models.DefaultSettings(), nil
	}
	settings := models.DefaultSettings()
	if enabled, ok := doc.Fields["interviewBookingsEnabled"].(bool); ok {
		settings.InterviewBookingsEnabled = enabled
	}
	if msg, ok := doc.Fields["interviewBookingsMessage"].(string); ok {
		settings.InterviewBookingsMessage = msg
	}
	settings.LastUpdated = normalize.Instant(doc.Fields["lastUpdated"])
	return settings, nil
}

// UpdateSettings writes the app settings document, creating it on first
// save. A fresh database has no settings document until an admin saves one.
func (s *AdminService) UpdateSettings(ctx context.Context, settings models.AppSettings) error {
	return s.gw.UpsertOne(ctx, configCollection, settingsDocID, bson.M{
		"interviewBookingsEnabled": settings.InterviewBookingsEnabled,
		"interviewBookingsMessage": settings.InterviewBookingsMessage,
		"lastUpdated":              time.Now(),
	})
}

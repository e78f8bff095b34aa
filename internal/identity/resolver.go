// Package identity reconciles test results that carry partial or missing
// user identity with a best-effort {name, email, phone} view.
package identity

import (
	"context"
	"log"

	"admin-service/internal/gateway"
	"admin-service/internal/models"
	"admin-service/internal/normalize"
)

// Collections consulted for resolution, in order.
const (
	attemptsCollection = "testAttempts"
	usersCollection    = "users"
)

type Resolver struct {
	gw gateway.Gateway
}

func NewResolver(gw gateway.Gateway) *Resolver {
	return &Resolver{gw: gw}
}

// Decorate resolves an identity for every result in the batch, in place.
// Total secondary reads are one attempts-group scan plus one point lookup
// per userId the scan left unresolved. A lookup failure leaves that one id
// unresolved; the batch never aborts, and every output record carries a
// non-empty identity, falling back to sentinels field by field.
func (r *Resolver) Decorate(ctx context.Context, results []models.TestResult) {
	resolved := r.resolveBatch(ctx, distinctUserIDs(results))
	for i := range results {
		results[i].UserDetails = merge(results[i], resolved[results[i].UserID])
	}
}

func (r *Resolver) resolveBatch(ctx context.Context, userIDs []string) map[string]models.UserIdentity {
	resolved := make(map[string]models.UserIdentity, len(userIDs))
	if len(userIDs) == 0 {
		return resolved
	}

	wanted := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}

	// Single scan of the attempts group, first matching record per user.
	attempts, err := r.gw.FetchGroup(ctx, attemptsCollection, gateway.Query{})
	if err != nil {
		log.Printf("identity: attempts scan failed, falling back to profile lookups: %v", err)
	}
	for _, doc := range attempts {
		uid, _ := doc.Fields["userId"].(string)
		if uid == "" {
			uid = doc.OwnerID
		}
		if !wanted[uid] {
			continue
		}
		if _, seen := resolved[uid]; seen {
			continue
		}
		resolved[uid] = normalize.Identity(doc.Fields)
	}

	// Point lookups only for userIds the scan did not cover.
	for _, uid := range userIDs {
		if _, ok := resolved[uid]; ok {
			continue
		}
		doc, err := r.gw.FetchOne(ctx, usersCollection, uid)
		if err != nil {
			log.Printf("identity: profile lookup failed for %s: %v", uid, err)
			continue
		}
		if doc == nil {
			continue
		}
		resolved[uid] = normalize.Identity(doc.Fields)
	}
	return resolved
}

// merge picks each identity attribute independently: embedded result field
// first, then the resolved record, then the sentinel.
func merge(result models.TestResult, looked models.UserIdentity) models.UserIdentity {
	id := models.Unresolved()
	if v := first(result.EmbeddedName, looked.Name); v != "" {
		id.Name = v
	}
	if v := first(result.EmbeddedEmail, looked.Email); v != "" {
		id.Email = v
	}
	if v := first(result.EmbeddedPhone, looked.Phone); v != "" {
		id.Phone = v
	}
	return id
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func distinctUserIDs(results []models.TestResult) []string {
	seen := make(map[string]bool, len(results))
	var ids []string
	for _, res := range results {
		if res.UserID == "" || seen[res.UserID] {
			continue
		}
		seen[res.UserID] = true
		ids = append(ids, res.UserID)
	}
	return ids
}

package redis

import (
	"context"
	"testing"
	"time"

	"euston-server/db"
	"euston-server/models"
)

func newTestDAO() (*SessionDAO, *db.MockRedisClient) {
	client := db.NewMockRedisClient(context.Background())
	return NewSessionDAO(client, time.Hour), client
}

func TestSessionDAO_UpsertAndGet(t *testing.T) {
	dao, client := newTestDAO()

	session := &models.SessionState{
		ID: "abc123",
		WeeklyPredictions: models.WeeklyPrediction{
			"Monday": 302,
			"Sunday": 198,
		},
		Metrics:   &models.ModelMetrics{MAE: 12.5, GrowthFactor: 1.18},
		CreatedAt: time.Now().UTC(),
	}

	if err := dao.Upsert(session); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if session.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be stamped")
	}

	// Stored under the versioned key format.
	if _, err := client.Get("analysis_session_v1:abc123"); err != nil {
		t.Fatalf("Expected session under versioned key: %v", err)
	}

	got, err := dao.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.WeeklyPredictions["Monday"] != 302 {
		t.Errorf("Expected Monday prediction 302, got %d", got.WeeklyPredictions["Monday"])
	}
	if got.Metrics == nil || got.Metrics.GrowthFactor != 1.18 {
		t.Errorf("Expected growth factor 1.18, got %+v", got.Metrics)
	}
}

func TestSessionDAO_GetMissing(t *testing.T) {
	dao, _ := newTestDAO()
	if _, err := dao.Get("nope"); err == nil {
		t.Error("Expected error for missing session")
	}
}

func TestSessionDAO_Delete(t *testing.T) {
	dao, _ := newTestDAO()

	session := &models.SessionState{ID: "gone"}
	if err := dao.Upsert(session); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := dao.Delete("gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := dao.Get("gone"); err == nil {
		t.Error("Expected error after delete")
	}
}

func TestSessionDAO_ListIDs(t *testing.T) {
	dao, _ := newTestDAO()

	for _, id := range []string{"one", "two"} {
		if err := dao.Upsert(&models.SessionState{ID: id}); err != nil {
			t.Fatalf("Upsert %s failed: %v", id, err)
		}
	}

	ids, err := dao.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 ids, got %d", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["one"] || !seen["two"] {
		t.Errorf("Unexpected ids: %v", ids)
	}
}

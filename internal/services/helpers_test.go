package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

// countingAudit wraps the real audit service, counts TrackChanges calls and can
// be told to fail them.
type countingAudit struct {
	AuditServicer
	calls int
	fail  error
}

func (a *countingAudit) TrackChanges(ctx context.Context, tx *gorm.DB, auditAPICallID string, changes ChangeSet) error {
	a.calls++
	if a.fail != nil {
		return a.fail
	}
	return a.AuditServicer.TrackChanges(ctx, tx, auditAPICallID, changes)
}

var errAuditDown = errors.New("audit store unavailable")

func newCountingAudit(db *gorm.DB) *countingAudit {
	return &countingAudit{AuditServicer: NewAuditService(db)}
}

// setup opens a database and creates a caller in its own household.
func setup(t *testing.T) (*gorm.DB, *testutil.Caller) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return db, testutil.CreateTestCaller(t, db)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func expectAudit(t *testing.T, db *gorm.DB, callID string, want ...models.AuditAction) []models.AuditChange {
	t.Helper()
	changes := testutil.AuditChanges(t, db, callID)
	if len(changes) != len(want) {
		t.Fatalf("expected %d audit changes, got %d", len(want), len(changes))
	}
	counts := map[models.AuditAction]int{}
	for _, c := range changes {
		counts[c.Action]++
	}
	for _, a := range want {
		counts[a]--
	}
	for a, n := range counts {
		if n != 0 {
			t.Errorf("unexpected number of %q audit changes (off by %d)", a, n)
		}
	}
	return changes
}

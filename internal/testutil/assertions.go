package testutil

import (
	"errors"
	"testing"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"

	"gorm.io/gorm"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertFundBalance reloads the fund and compares its balance.
func AssertFundBalance(t *testing.T, db *gorm.DB, fundID string, want int64) {
	t.Helper()

	var fund models.Fund
	if err := db.Unscoped().Where("id = ?", fundID).First(&fund).Error; err != nil {
		t.Fatalf("failed to reload fund %s: %v", fundID, err)
	}
	if fund.BalanceCents != want {
		t.Errorf("expected fund balance %d, got %d", want, fund.BalanceCents)
	}
}

// AuditChanges returns the audit rows written for the call.
func AuditChanges(t *testing.T, db *gorm.DB, auditAPICallID string) []models.AuditChange {
	t.Helper()

	var changes []models.AuditChange
	if err := db.Where("audit_api_call_id = ?", auditAPICallID).Order("entity_table, action").Find(&changes).Error; err != nil {
		t.Fatalf("failed to load audit changes: %v", err)
	}
	return changes
}

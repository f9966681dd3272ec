package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/testutil"
	"hearth/internal/uuid"
)

func TestDepositLifecycleMovesFundBalance(t *testing.T) {
	ctx := context.Background()
	db, caller := setup(t)
	audit := NewAuditService(db)
	funds := NewFundService(db, audit)
	deposits := NewDepositService(db, audit)

	fundID, err := funds.CreateFund(ctx, CreateFundParams{AuditAPICallID: caller.CallID(), Name: "Savings"})
	testutil.AssertNoError(t, err)
	testutil.AssertFundBalance(t, db, fundID, 0)

	depositID, err := deposits.CreateDeposit(ctx, CreateDepositParams{
		AuditAPICallID: caller.CallID(),
		FundID:         fundID,
		Date:           "2024-03-01",
		AmountCents:    10000,
	})
	testutil.AssertNoError(t, err)
	testutil.AssertFundBalance(t, db, fundID, 10000)

	updateCall := testutil.CreateTestAPICall(t, db, caller.User.ID)
	err = deposits.UpdateDeposit(ctx, UpdateDepositParams{
		AuditAPICallID: updateCall.ID,
		ID:             depositID,
		FundID:         fundID,
		Date:           "2024-03-01",
		AmountCents:    7000,
	})
	testutil.AssertNoError(t, err)
	testutil.AssertFundBalance(t, db, fundID, 7000)
	expectAudit(t, db, updateCall.ID, models.AuditActionChanged, models.AuditActionChanged)

	deleteCall := testutil.CreateTestAPICall(t, db, caller.User.ID)
	err = deposits.DeleteDeposit(ctx, DeleteParams{AuditAPICallID: deleteCall.ID, ID: depositID})
	testutil.AssertNoError(t, err)
	testutil.AssertFundBalance(t, db, fundID, 0)
	expectAudit(t, db, deleteCall.ID, models.AuditActionDeleted, models.AuditActionChanged)
}

func TestCreateDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("validation_order", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewDepositService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)

		tests := []struct {
			name string
			p    CreateDepositParams
			code string
		}{
			{"all_invalid", CreateDepositParams{FundID: "x", Date: "nope", AmountCents: 0}, "DEPOSIT_INVALID_FUND"},
			{"bad_date", CreateDepositParams{FundID: fund.ID, Date: "2024-02-30", AmountCents: 0}, "DEPOSIT_INVALID_DATE"},
			{"zero_amount", CreateDepositParams{FundID: fund.ID, Date: "2024-02-28", AmountCents: 0}, "DEPOSIT_INVALID_AMOUNT"},
			{"negative_amount", CreateDepositParams{FundID: fund.ID, Date: "2024-02-28", AmountCents: -5}, "DEPOSIT_INVALID_AMOUNT"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tt.p.AuditAPICallID = caller.CallID()
				_, err := svc.CreateDeposit(ctx, tt.p)
				testutil.AssertAppError(t, err, tt.code)
			})
		}
		testutil.AssertFundBalance(t, db, fund.ID, 0)
	})

	t.Run("other_household_fund", func(t *testing.T) {
		db, caller := setup(t)
		other := testutil.CreateTestCaller(t, db)
		svc := NewDepositService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, other.HouseholdID(), 100)

		_, err := svc.CreateDeposit(ctx, CreateDepositParams{
			AuditAPICallID: caller.CallID(),
			FundID:         fund.ID,
			Date:           "2024-02-28",
			AmountCents:    500,
		})
		testutil.AssertAppError(t, err, "DEPOSIT_FUND_NOT_FOUND")
		testutil.AssertFundBalance(t, db, fund.ID, 100)
	})

	t.Run("missing_and_foreign_fund_look_the_same", func(t *testing.T) {
		db, caller := setup(t)
		other := testutil.CreateTestCaller(t, db)
		svc := NewDepositService(db, NewAuditService(db))
		foreign := testutil.CreateTestFund(t, db, other.HouseholdID(), 0)

		for _, fundID := range []string{foreign.ID, uuid.New()} {
			_, err := svc.CreateDeposit(ctx, CreateDepositParams{
				AuditAPICallID: caller.CallID(),
				FundID:         fundID,
				Date:           "2024-02-28",
				AmountCents:    500,
			})
			testutil.AssertAppError(t, err, "DEPOSIT_FUND_NOT_FOUND")

			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.StatusCode() != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", appErr.StatusCode())
			}
		}
		if n := countRows(t, db, &models.Deposit{}); n != 0 {
			t.Errorf("expected no deposits, got %d", n)
		}
	})

	t.Run("audit_failure_rolls_back_balance", func(t *testing.T) {
		db, caller := setup(t)
		audit := newCountingAudit(db)
		audit.fail = errAuditDown
		svc := NewDepositService(db, audit)
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 250)

		_, err := svc.CreateDeposit(ctx, CreateDepositParams{
			AuditAPICallID: caller.CallID(),
			FundID:         fund.ID,
			Date:           "2024-02-28",
			AmountCents:    500,
		})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
		testutil.AssertFundBalance(t, db, fund.ID, 250)
		if n := countRows(t, db, &models.Deposit{}); n != 0 {
			t.Errorf("expected no deposits after rollback, got %d", n)
		}
		if n := countRows(t, db, &models.AuditChange{}); n != 0 {
			t.Errorf("expected no audit rows after rollback, got %d", n)
		}
	})
}

func TestUpdateDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("reassign_fund", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewDepositService(db, NewAuditService(db))
		from := testutil.CreateTestFund(t, db, caller.HouseholdID(), 3000)
		to := testutil.CreateTestFund(t, db, caller.HouseholdID(), 1000)
		deposit := testutil.CreateTestDeposit(t, db, from.ID, 3000)

		err := svc.UpdateDeposit(ctx, UpdateDepositParams{
			AuditAPICallID: caller.CallID(),
			ID:             deposit.ID,
			FundID:         to.ID,
			Date:           string(deposit.Date),
			AmountCents:    2500,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertFundBalance(t, db, from.ID, 0)
		testutil.AssertFundBalance(t, db, to.ID, 3500)
		expectAudit(t, db, caller.CallID(),
			models.AuditActionChanged, models.AuditActionChanged, models.AuditActionChanged)
	})

	t.Run("date_only_leaves_balance", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewDepositService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 3000)
		deposit := testutil.CreateTestDeposit(t, db, fund.ID, 3000)

		err := svc.UpdateDeposit(ctx, UpdateDepositParams{
			AuditAPICallID: caller.CallID(),
			ID:             deposit.ID,
			FundID:         fund.ID,
			Date:           "2024-06-30",
			AmountCents:    3000,
		})
		testutil.AssertNoError(t, err)
		testutil.AssertFundBalance(t, db, fund.ID, 3000)
		expectAudit(t, db, caller.CallID(), models.AuditActionChanged)
	})

	t.Run("no_op", func(t *testing.T) {
		db, caller := setup(t)
		audit := newCountingAudit(db)
		svc := NewDepositService(db, audit)
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 3000)
		deposit := testutil.CreateTestDeposit(t, db, fund.ID, 3000)

		err := svc.UpdateDeposit(ctx, UpdateDepositParams{
			AuditAPICallID: caller.CallID(),
			ID:             deposit.ID,
			FundID:         fund.ID,
			Date:           string(deposit.Date),
			AmountCents:    deposit.AmountCents,
		})
		testutil.AssertNoError(t, err)
		if audit.calls != 0 {
			t.Errorf("expected no audit calls, got %d", audit.calls)
		}
	})

	t.Run("reassign_to_foreign_fund", func(t *testing.T) {
		db, caller := setup(t)
		other := testutil.CreateTestCaller(t, db)
		svc := NewDepositService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 3000)
		foreign := testutil.CreateTestFund(t, db, other.HouseholdID(), 0)
		deposit := testutil.CreateTestDeposit(t, db, fund.ID, 3000)

		err := svc.UpdateDeposit(ctx, UpdateDepositParams{
			AuditAPICallID: caller.CallID(),
			ID:             deposit.ID,
			FundID:         foreign.ID,
			Date:           string(deposit.Date),
			AmountCents:    9000,
		})
		testutil.AssertAppError(t, err, "DEPOSIT_FUND_NOT_FOUND")

		var got models.Deposit
		db.First(&got, "id = ?", deposit.ID)
		if got.FundID != fund.ID || got.AmountCents != 3000 {
			t.Errorf("expected deposit untouched, got fund=%s amount=%d", got.FundID, got.AmountCents)
		}
		testutil.AssertFundBalance(t, db, fund.ID, 3000)
		testutil.AssertFundBalance(t, db, foreign.ID, 0)
	})

	t.Run("other_household_deposit", func(t *testing.T) {
		db, caller := setup(t)
		other := testutil.CreateTestCaller(t, db)
		svc := NewDepositService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, other.HouseholdID(), 3000)
		deposit := testutil.CreateTestDeposit(t, db, fund.ID, 3000)

		err := svc.UpdateDeposit(ctx, UpdateDepositParams{
			AuditAPICallID: caller.CallID(),
			ID:             deposit.ID,
			FundID:         fund.ID,
			Date:           string(deposit.Date),
			AmountCents:    1,
		})
		testutil.AssertAppError(t, err, "DEPOSIT_NOT_FOUND")
	})
}

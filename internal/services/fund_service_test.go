package services

import (
	"context"
	"testing"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func TestUpdateFund(t *testing.T) {
	ctx := context.Background()

	t.Run("rename_keeps_balance", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewFundService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 4200)

		err := svc.UpdateFund(ctx, UpdateFundParams{AuditAPICallID: caller.CallID(), ID: fund.ID, Name: "Holiday"})
		testutil.AssertNoError(t, err)

		got, err := svc.GetFund(ctx, GetParams{AuditAPICallID: caller.CallID(), ID: fund.ID})
		testutil.AssertNoError(t, err)
		if got.Name != "Holiday" {
			t.Errorf("expected name Holiday, got %s", got.Name)
		}
		if got.BalanceCents != 4200 {
			t.Errorf("expected balance 4200, got %d", got.BalanceCents)
		}
	})

	t.Run("same_name_is_no_op", func(t *testing.T) {
		db, caller := setup(t)
		audit := newCountingAudit(db)
		svc := NewFundService(db, audit)
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)

		err := svc.UpdateFund(ctx, UpdateFundParams{AuditAPICallID: caller.CallID(), ID: fund.ID, Name: fund.Name})
		testutil.AssertNoError(t, err)
		if audit.calls != 0 {
			t.Errorf("expected no audit calls, got %d", audit.calls)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewFundService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)

		err := svc.UpdateFund(ctx, UpdateFundParams{AuditAPICallID: caller.CallID(), ID: fund.ID, Name: ""})
		testutil.AssertAppError(t, err, "FUND_INVALID_NAME")
	})
}

func TestDeleteFund(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_fund", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewFundService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)

		testutil.AssertNoError(t, svc.DeleteFund(ctx, DeleteParams{AuditAPICallID: caller.CallID(), ID: fund.ID}))
		if n := countRows(t, db, &models.Fund{}); n != 0 {
			t.Errorf("expected fund to be deleted, %d left", n)
		}
	})

	t.Run("has_deposits", func(t *testing.T) {
		db, caller := setup(t)
		audit := newCountingAudit(db)
		svc := NewFundService(db, audit)
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 100)
		testutil.CreateTestDeposit(t, db, fund.ID, 100)

		err := svc.DeleteFund(ctx, DeleteParams{AuditAPICallID: caller.CallID(), ID: fund.ID})
		testutil.AssertAppError(t, err, "FUND_HAS_DEPOSITS")
		if audit.calls != 0 {
			t.Errorf("expected no audit calls, got %d", audit.calls)
		}
	})

	t.Run("has_expenses", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewFundService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)
		refs := testutil.CreateTestExpenseRefs(t, db, caller.HouseholdID())
		refs.FundID = &fund.ID
		testutil.CreateTestExpense(t, db, refs, 100, 0)

		err := svc.DeleteFund(ctx, DeleteParams{AuditAPICallID: caller.CallID(), ID: fund.ID})
		testutil.AssertAppError(t, err, "FUND_HAS_EXPENSES")
	})

	t.Run("deleted_deposit_does_not_block", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewFundService(db, NewAuditService(db))
		fund := testutil.CreateTestFund(t, db, caller.HouseholdID(), 0)
		deposit := testutil.CreateTestDeposit(t, db, fund.ID, 100)
		db.Delete(deposit)

		testutil.AssertNoError(t, svc.DeleteFund(ctx, DeleteParams{AuditAPICallID: caller.CallID(), ID: fund.ID}))
	})
}

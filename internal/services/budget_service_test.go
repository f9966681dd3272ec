package services

import (
	"context"
	"testing"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)

		id, err := svc.CreateBudget(ctx, CreateBudgetParams{
			AuditAPICallID: caller.CallID(),
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          0,
			BudgetCents:    50000,
		})
		testutil.AssertNoError(t, err)

		budget, err := svc.GetBudget(ctx, GetParams{AuditAPICallID: caller.CallID(), ID: id})
		testutil.AssertNoError(t, err)
		if budget.Month != 0 || budget.Year != 2024 || budget.BudgetCents != 50000 {
			t.Errorf("unexpected budget %+v", budget)
		}
	})

	t.Run("validation_order", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)

		tests := []struct {
			name string
			p    CreateBudgetParams
			code string
		}{
			{"all_invalid", CreateBudgetParams{SubcategoryID: "", Year: 1999, Month: 12, BudgetCents: -1}, "BUDGET_INVALID_SUBCATEGORY"},
			{"year_low", CreateBudgetParams{SubcategoryID: sub.ID, Year: 1999, Month: 12, BudgetCents: -1}, "BUDGET_INVALID_YEAR"},
			{"year_high", CreateBudgetParams{SubcategoryID: sub.ID, Year: 2051, Month: 0}, "BUDGET_INVALID_YEAR"},
			{"month_high", CreateBudgetParams{SubcategoryID: sub.ID, Year: 2050, Month: 12, BudgetCents: -1}, "BUDGET_INVALID_MONTH"},
			{"month_negative", CreateBudgetParams{SubcategoryID: sub.ID, Year: 2000, Month: -1}, "BUDGET_INVALID_MONTH"},
			{"cents", CreateBudgetParams{SubcategoryID: sub.ID, Year: 2000, Month: 11, BudgetCents: -1}, "BUDGET_INVALID_CENTS"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tt.p.AuditAPICallID = caller.CallID()
				_, err := svc.CreateBudget(ctx, tt.p)
				testutil.AssertAppError(t, err, tt.code)
			})
		}
	})

	t.Run("duplicate_period", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)
		testutil.CreateTestBudget(t, db, sub.ID, 2024, 5)

		_, err := svc.CreateBudget(ctx, CreateBudgetParams{
			AuditAPICallID: caller.CallID(),
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          5,
		})
		testutil.AssertAppError(t, err, "BUDGET_EXISTS")
	})

	t.Run("other_household_subcategory", func(t *testing.T) {
		db, caller := setup(t)
		other := testutil.CreateTestCaller(t, db)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, other.HouseholdID()).ID)

		_, err := svc.CreateBudget(ctx, CreateBudgetParams{
			AuditAPICallID: caller.CallID(),
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          5,
		})
		testutil.AssertAppError(t, err, "BUDGET_SUBCATEGORY_NOT_FOUND")
	})
}

func TestUpdateBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("change_amount", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)
		budget := testutil.CreateTestBudget(t, db, sub.ID, 2024, 1)

		err := svc.UpdateBudget(ctx, UpdateBudgetParams{
			AuditAPICallID: caller.CallID(),
			ID:             budget.ID,
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          1,
			BudgetCents:    0,
		})
		testutil.AssertNoError(t, err)

		var got models.Budget
		db.First(&got, "id = ?", budget.ID)
		if got.BudgetCents != 0 {
			t.Errorf("expected budget 0, got %d", got.BudgetCents)
		}
		expectAudit(t, db, caller.CallID(), models.AuditActionChanged)
	})

	t.Run("move_onto_taken_period", func(t *testing.T) {
		db, caller := setup(t)
		svc := NewBudgetService(db, NewAuditService(db))
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)
		testutil.CreateTestBudget(t, db, sub.ID, 2024, 1)
		budget := testutil.CreateTestBudget(t, db, sub.ID, 2024, 2)

		err := svc.UpdateBudget(ctx, UpdateBudgetParams{
			AuditAPICallID: caller.CallID(),
			ID:             budget.ID,
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          1,
			BudgetCents:    budget.BudgetCents,
		})
		testutil.AssertAppError(t, err, "BUDGET_EXISTS")
	})

	t.Run("no_op", func(t *testing.T) {
		db, caller := setup(t)
		audit := newCountingAudit(db)
		svc := NewBudgetService(db, audit)
		sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)
		budget := testutil.CreateTestBudget(t, db, sub.ID, 2024, 2)

		err := svc.UpdateBudget(ctx, UpdateBudgetParams{
			AuditAPICallID: caller.CallID(),
			ID:             budget.ID,
			SubcategoryID:  sub.ID,
			Year:           2024,
			Month:          2,
			BudgetCents:    budget.BudgetCents,
		})
		testutil.AssertNoError(t, err)
		if audit.calls != 0 {
			t.Errorf("expected no audit calls, got %d", audit.calls)
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	ctx := context.Background()
	db, caller := setup(t)
	other := testutil.CreateTestCaller(t, db)
	svc := NewBudgetService(db, NewAuditService(db))
	sub := testutil.CreateTestSubcategory(t, db, testutil.CreateTestCategory(t, db, caller.HouseholdID()).ID)
	budget := testutil.CreateTestBudget(t, db, sub.ID, 2024, 3)

	err := svc.DeleteBudget(ctx, DeleteParams{AuditAPICallID: other.CallID(), ID: budget.ID})
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteBudget(ctx, DeleteParams{AuditAPICallID: caller.CallID(), ID: budget.ID}))

	// The period is free again once the budget is gone.
	_, err = svc.CreateBudget(ctx, CreateBudgetParams{
		AuditAPICallID: caller.CallID(),
		SubcategoryID:  sub.ID,
		Year:           2024,
		Month:          3,
	})
	testutil.AssertNoError(t, err)
}

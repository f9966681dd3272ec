package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// expenseService handles expenses. How expense writes move fund balances depends
// on the accounting mode; deleting an expense always credits its fund back.
type expenseService struct {
	db         *gorm.DB
	audit      AuditServicer
	accounting ExpenseFundAccounting
}

// NewExpenseService creates a new ExpenseServicer. An unknown accounting mode
// falls back to ExpenseFundDeleteOnly.
func NewExpenseService(db *gorm.DB, audit AuditServicer, accounting ExpenseFundAccounting) ExpenseServicer {
	if accounting != ExpenseFundSymmetric {
		accounting = ExpenseFundDeleteOnly
	}
	return &expenseService{db: db, audit: audit, accounting: accounting}
}

type expenseFields struct {
	fundID      *string
	date        models.Date
	description string
}

func validateExpense(subcategoryID, vendorID, memberID string, fundID *string, date string, amount, reimbursed int64, description string) (expenseFields, error) {
	var f expenseFields
	if err := requireRef(subcategoryID, apperrors.ErrExpenseInvalidSubcategory); err != nil {
		return f, err
	}
	if err := requireRef(vendorID, apperrors.ErrExpenseInvalidVendor); err != nil {
		return f, err
	}
	if err := requireRef(memberID, apperrors.ErrExpenseInvalidMember); err != nil {
		return f, err
	}
	d, err := requireDate(date, apperrors.ErrExpenseInvalidDate)
	if err != nil {
		return f, err
	}
	if err := requirePositive(amount, apperrors.ErrExpenseInvalidAmount); err != nil {
		return f, err
	}
	if reimbursed < 0 || reimbursed > amount {
		return f, apperrors.ErrExpenseInvalidReimbursed
	}
	desc, err := requireText(description, apperrors.ErrExpenseInvalidDescription)
	if err != nil {
		return f, err
	}
	fund, err := optionalRef(fundID, apperrors.ErrExpenseInvalidFund)
	if err != nil {
		return f, err
	}
	return expenseFields{fundID: fund, date: d, description: desc}, nil
}

// netDraw is what the expense takes out of its fund under the current mode.
func (s *expenseService) netDraw(e *models.Expense) int64 {
	if s.accounting != ExpenseFundSymmetric {
		return 0
	}
	return -e.NetCents()
}

// CreateExpense records an expense after checking every reference against the
// household. Only symmetric accounting debits the fund on create.
func (s *expenseService) CreateExpense(ctx context.Context, p CreateExpenseParams) (string, error) {
	f, err := validateExpense(p.SubcategoryID, p.VendorID, p.HouseholdMemberID, p.FundID, p.Date, p.AmountCents, p.ReimbursedCents, p.Description)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}
	db := s.db.WithContext(ctx)
	if err := requireOwned[models.Subcategory](db, householdID, p.SubcategoryID, apperrors.ErrExpenseSubcategoryNotFound); err != nil {
		return "", err
	}
	if err := requireOwned[models.Vendor](db, householdID, p.VendorID, apperrors.ErrExpenseVendorNotFound); err != nil {
		return "", err
	}
	if err := requireOwned[models.HouseholdMember](db, householdID, p.HouseholdMemberID, apperrors.ErrExpenseMemberNotFound); err != nil {
		return "", err
	}
	if f.fundID != nil {
		if err := requireOwned[models.Fund](db, householdID, *f.fundID, apperrors.ErrExpenseFundNotFound); err != nil {
			return "", err
		}
	}

	expense := &models.Expense{
		SubcategoryID:     p.SubcategoryID,
		VendorID:          p.VendorID,
		HouseholdMemberID: p.HouseholdMemberID,
		FundID:            f.fundID,
		Date:              f.date,
		AmountCents:       p.AmountCents,
		ReimbursedCents:   p.ReimbursedCents,
		Description:       f.description,
	}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.create(expense); err != nil {
			return err
		}
		return u.applyFundDeltas(householdID, moveDeltas("", 0, expense.FundRef(), s.netDraw(expense)))
	})
	if err != nil {
		return "", err
	}
	return expense.ID, nil
}

// UpdateExpense replaces the expense's fields. Changed references are checked
// against the household before anything is written.
func (s *expenseService) UpdateExpense(ctx context.Context, p UpdateExpenseParams) error {
	f, err := validateExpense(p.SubcategoryID, p.VendorID, p.HouseholdMemberID, p.FundID, p.Date, p.AmountCents, p.ReimbursedCents, p.Description)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	expense, err := mustFind[models.Expense](db, householdID, p.ID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	after := *expense
	after.SubcategoryID = p.SubcategoryID
	after.VendorID = p.VendorID
	after.HouseholdMemberID = p.HouseholdMemberID
	after.FundID = f.fundID
	after.Date = f.date
	after.AmountCents = p.AmountCents
	after.ReimbursedCents = p.ReimbursedCents
	after.Description = f.description

	var diff changeset.Diff
	if changeset.Compare(&diff, "subcategory_id", expense.SubcategoryID, after.SubcategoryID) {
		if err := requireOwned[models.Subcategory](db, householdID, after.SubcategoryID, apperrors.ErrExpenseSubcategoryNotFound); err != nil {
			return err
		}
	}
	if changeset.Compare(&diff, "vendor_id", expense.VendorID, after.VendorID) {
		if err := requireOwned[models.Vendor](db, householdID, after.VendorID, apperrors.ErrExpenseVendorNotFound); err != nil {
			return err
		}
	}
	if changeset.Compare(&diff, "household_member_id", expense.HouseholdMemberID, after.HouseholdMemberID) {
		if err := requireOwned[models.HouseholdMember](db, householdID, after.HouseholdMemberID, apperrors.ErrExpenseMemberNotFound); err != nil {
			return err
		}
	}
	if changeset.ComparePtr(&diff, "fund_id", expense.FundID, after.FundID) && after.FundID != nil {
		if err := requireOwned[models.Fund](db, householdID, *after.FundID, apperrors.ErrExpenseFundNotFound); err != nil {
			return err
		}
	}
	changeset.Compare(&diff, "date", expense.Date, after.Date)
	changeset.Compare(&diff, "amount_cents", expense.AmountCents, after.AmountCents)
	changeset.Compare(&diff, "reimbursed_cents", expense.ReimbursedCents, after.ReimbursedCents)
	changeset.Compare(&diff, "description", expense.Description, after.Description)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.update(expense, &after, &diff); err != nil {
			return err
		}
		deltas := moveDeltas(expense.FundRef(), s.netDraw(expense), after.FundRef(), s.netDraw(&after))
		return u.applyFundDeltas(householdID, deltas)
	})
}

// DeleteExpense deletes an expense and credits its fund, if any, with the net
// amount.
func (s *expenseService) DeleteExpense(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	expense, err := mustFind[models.Expense](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrExpenseNotFound)
	if err != nil {
		return err
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.delete(expense); err != nil {
			return err
		}
		return u.applyFundDeltas(householdID, moveDeltas(expense.FundRef(), -expense.NetCents(), "", 0))
	})
}

// GetExpense retrieves an expense by id.
func (s *expenseService) GetExpense(ctx context.Context, p GetParams) (*models.Expense, error) {
	return getOwned[models.Expense](ctx, s.db, p, apperrors.ErrExpenseNotFound)
}

// ListExpenses retrieves a page of the household's expenses.
func (s *expenseService) ListExpenses(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Expense], error) {
	return listOwned[models.Expense](ctx, s.db, p)
}

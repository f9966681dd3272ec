package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, audit AuditServicer) BudgetServicer {
	return &budgetService{db: db, audit: audit}
}

func validateBudget(subcategoryID string, year, month int, cents int64) error {
	if err := requireRef(subcategoryID, apperrors.ErrBudgetInvalidSubcategory); err != nil {
		return err
	}
	if err := requireRange(year, models.BudgetMinYear, models.BudgetMaxYear, apperrors.ErrBudgetInvalidYear); err != nil {
		return err
	}
	if err := requireRange(month, models.BudgetMinMonth, models.BudgetMaxMonth, apperrors.ErrBudgetInvalidMonth); err != nil {
		return err
	}
	if cents < 0 {
		return apperrors.ErrBudgetInvalidCents
	}
	return nil
}

// periodTaken reports whether another live budget already covers the period.
func periodTaken(db *gorm.DB, subcategoryID string, year, month int, exceptID string) (bool, error) {
	q := db.Model(&models.Budget{}).Where("subcategory_id = ? AND year = ? AND month = ?", subcategoryID, year, month)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return n > 0, nil
}

// CreateBudget creates the budget of a subcategory for one month.
func (s *budgetService) CreateBudget(ctx context.Context, p CreateBudgetParams) (string, error) {
	if err := validateBudget(p.SubcategoryID, p.Year, p.Month, p.BudgetCents); err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}
	db := s.db.WithContext(ctx)
	if err := requireOwned[models.Subcategory](db, householdID, p.SubcategoryID, apperrors.ErrBudgetSubcategoryNotFound); err != nil {
		return "", err
	}
	taken, err := periodTaken(db, p.SubcategoryID, p.Year, p.Month, "")
	if err != nil {
		return "", err
	}
	if taken {
		return "", apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		SubcategoryID: p.SubcategoryID,
		Year:          p.Year,
		Month:         p.Month,
		BudgetCents:   p.BudgetCents,
	}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(budget)
	})
	if err != nil {
		return "", err
	}
	return budget.ID, nil
}

// UpdateBudget replaces the budget's fields. A changed subcategory must belong to
// the household and a changed period must still be free.
func (s *budgetService) UpdateBudget(ctx context.Context, p UpdateBudgetParams) error {
	if err := validateBudget(p.SubcategoryID, p.Year, p.Month, p.BudgetCents); err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	budget, err := mustFind[models.Budget](db, householdID, p.ID, apperrors.ErrBudgetNotFound)
	if err != nil {
		return err
	}

	after := *budget
	after.SubcategoryID = p.SubcategoryID
	after.Year = p.Year
	after.Month = p.Month
	after.BudgetCents = p.BudgetCents

	var diff changeset.Diff
	if changeset.Compare(&diff, "subcategory_id", budget.SubcategoryID, after.SubcategoryID) {
		if err := requireOwned[models.Subcategory](db, householdID, after.SubcategoryID, apperrors.ErrBudgetSubcategoryNotFound); err != nil {
			return err
		}
	}
	changeset.Compare(&diff, "year", budget.Year, after.Year)
	changeset.Compare(&diff, "month", budget.Month, after.Month)
	changeset.Compare(&diff, "budget_cents", budget.BudgetCents, after.BudgetCents)
	if diff.Empty() {
		return nil
	}

	if diff.Has("subcategory_id") || diff.Has("year") || diff.Has("month") {
		taken, err := periodTaken(db, after.SubcategoryID, after.Year, after.Month, budget.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrBudgetExists
		}
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(budget, &after, &diff)
	})
}

// DeleteBudget deletes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	budget, err := mustFind[models.Budget](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrBudgetNotFound)
	if err != nil {
		return err
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(budget)
	})
}

// GetBudget retrieves a budget by id.
func (s *budgetService) GetBudget(ctx context.Context, p GetParams) (*models.Budget, error) {
	return getOwned[models.Budget](ctx, s.db, p, apperrors.ErrBudgetNotFound)
}

// ListBudgets retrieves a page of the household's budgets.
func (s *budgetService) ListBudgets(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Budget], error) {
	return listOwned[models.Budget](ctx, s.db, p)
}

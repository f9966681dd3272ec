package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// fundService handles funds. Balances are never written here; deposits and
// expenses move them.
type fundService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB, audit AuditServicer) FundServicer {
	return &fundService{db: db, audit: audit}
}

// CreateFund creates an empty fund.
func (s *fundService) CreateFund(ctx context.Context, p CreateFundParams) (string, error) {
	name, err := requireText(p.Name, apperrors.ErrFundInvalidName)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}

	fund := &models.Fund{HouseholdID: householdID, Name: name}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(fund)
	})
	if err != nil {
		return "", err
	}
	return fund.ID, nil
}

// UpdateFund renames a fund when the name differs.
func (s *fundService) UpdateFund(ctx context.Context, p UpdateFundParams) error {
	name, err := requireText(p.Name, apperrors.ErrFundInvalidName)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	fund, err := mustFind[models.Fund](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrFundNotFound)
	if err != nil {
		return err
	}

	after := *fund
	after.Name = name

	var diff changeset.Diff
	changeset.Compare(&diff, "name", fund.Name, after.Name)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(fund, &after, &diff)
	})
}

// DeleteFund deletes a fund no deposit or expense refers to.
func (s *fundService) DeleteFund(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	fund, err := mustFind[models.Fund](db, householdID, p.ID, apperrors.ErrFundNotFound)
	if err != nil {
		return err
	}

	n, err := countWhere(db, &models.Deposit{}, "fund_id = ?", fund.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrFundHasDeposits
	}
	n, err = countWhere(db, &models.Expense{}, "fund_id = ?", fund.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrFundHasExpenses
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(fund)
	})
}

// GetFund retrieves a fund with its current balance.
func (s *fundService) GetFund(ctx context.Context, p GetParams) (*models.Fund, error) {
	return getOwned[models.Fund](ctx, s.db, p, apperrors.ErrFundNotFound)
}

// ListFunds retrieves a page of the household's funds.
func (s *fundService) ListFunds(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Fund], error) {
	return listOwned[models.Fund](ctx, s.db, p)
}

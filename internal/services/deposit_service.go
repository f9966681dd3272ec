package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// depositService handles deposits. Every deposit write moves its fund's balance
// in the same transaction.
type depositService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewDepositService creates a new DepositServicer.
func NewDepositService(db *gorm.DB, audit AuditServicer) DepositServicer {
	return &depositService{db: db, audit: audit}
}

func validateDeposit(fundID, date string, amountCents int64) (models.Date, error) {
	if err := requireRef(fundID, apperrors.ErrDepositInvalidFund); err != nil {
		return "", err
	}
	d, err := requireDate(date, apperrors.ErrDepositInvalidDate)
	if err != nil {
		return "", err
	}
	if err := requirePositive(amountCents, apperrors.ErrDepositInvalidAmount); err != nil {
		return "", err
	}
	return d, nil
}

// CreateDeposit adds a deposit and credits its fund by the amount.
func (s *depositService) CreateDeposit(ctx context.Context, p CreateDepositParams) (string, error) {
	date, err := validateDeposit(p.FundID, p.Date, p.AmountCents)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}
	if err := requireOwned[models.Fund](s.db.WithContext(ctx), householdID, p.FundID, apperrors.ErrDepositFundNotFound); err != nil {
		return "", err
	}

	deposit := &models.Deposit{FundID: p.FundID, Date: date, AmountCents: p.AmountCents}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.create(deposit); err != nil {
			return err
		}
		return u.applyFundDeltas(householdID, moveDeltas("", 0, deposit.FundID, deposit.AmountCents))
	})
	if err != nil {
		return "", err
	}
	return deposit.ID, nil
}

// UpdateDeposit replaces the deposit's fields. Moving the deposit to another fund
// debits the old fund by the old amount and credits the new fund by the new
// amount; otherwise the fund moves by the change in amount.
func (s *depositService) UpdateDeposit(ctx context.Context, p UpdateDepositParams) error {
	date, err := validateDeposit(p.FundID, p.Date, p.AmountCents)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	deposit, err := mustFind[models.Deposit](db, householdID, p.ID, apperrors.ErrDepositNotFound)
	if err != nil {
		return err
	}

	after := *deposit
	after.FundID = p.FundID
	after.Date = date
	after.AmountCents = p.AmountCents

	var diff changeset.Diff
	if changeset.Compare(&diff, "fund_id", deposit.FundID, after.FundID) {
		if err := requireOwned[models.Fund](db, householdID, after.FundID, apperrors.ErrDepositFundNotFound); err != nil {
			return err
		}
	}
	changeset.Compare(&diff, "date", deposit.Date, after.Date)
	changeset.Compare(&diff, "amount_cents", deposit.AmountCents, after.AmountCents)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.update(deposit, &after, &diff); err != nil {
			return err
		}
		deltas := moveDeltas(deposit.FundID, deposit.AmountCents, after.FundID, after.AmountCents)
		return u.applyFundDeltas(householdID, deltas)
	})
}

// DeleteDeposit deletes a deposit and debits its fund by the amount.
func (s *depositService) DeleteDeposit(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	deposit, err := mustFind[models.Deposit](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrDepositNotFound)
	if err != nil {
		return err
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		if err := u.delete(deposit); err != nil {
			return err
		}
		return u.applyFundDeltas(householdID, moveDeltas(deposit.FundID, deposit.AmountCents, "", 0))
	})
}

// GetDeposit retrieves a deposit by id.
func (s *depositService) GetDeposit(ctx context.Context, p GetParams) (*models.Deposit, error) {
	return getOwned[models.Deposit](ctx, s.db, p, apperrors.ErrDepositNotFound)
}

// ListDeposits retrieves a page of the household's deposits.
func (s *depositService) ListDeposits(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Deposit], error) {
	return listOwned[models.Deposit](ctx, s.db, p)
}

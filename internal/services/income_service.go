package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

type incomeService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB, audit AuditServicer) IncomeServicer {
	return &incomeService{db: db, audit: audit}
}

func validateIncome(memberID, date string, amount int64, description string) (models.Date, string, error) {
	if err := requireRef(memberID, apperrors.ErrIncomeInvalidMember); err != nil {
		return "", "", err
	}
	d, err := requireDate(date, apperrors.ErrIncomeInvalidDate)
	if err != nil {
		return "", "", err
	}
	if err := requirePositive(amount, apperrors.ErrIncomeInvalidAmount); err != nil {
		return "", "", err
	}
	desc, err := requireText(description, apperrors.ErrIncomeInvalidDescription)
	if err != nil {
		return "", "", err
	}
	return d, desc, nil
}

// CreateIncome records income earned by a household member.
func (s *incomeService) CreateIncome(ctx context.Context, p CreateIncomeParams) (string, error) {
	date, desc, err := validateIncome(p.HouseholdMemberID, p.Date, p.AmountCents, p.Description)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}
	if err := requireOwned[models.HouseholdMember](s.db.WithContext(ctx), householdID, p.HouseholdMemberID, apperrors.ErrIncomeMemberNotFound); err != nil {
		return "", err
	}

	income := &models.Income{
		HouseholdMemberID: p.HouseholdMemberID,
		Date:              date,
		AmountCents:       p.AmountCents,
		Description:       desc,
	}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(income)
	})
	if err != nil {
		return "", err
	}
	return income.ID, nil
}

// UpdateIncome replaces the income's fields.
func (s *incomeService) UpdateIncome(ctx context.Context, p UpdateIncomeParams) error {
	date, desc, err := validateIncome(p.HouseholdMemberID, p.Date, p.AmountCents, p.Description)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	income, err := mustFind[models.Income](db, householdID, p.ID, apperrors.ErrIncomeNotFound)
	if err != nil {
		return err
	}

	after := *income
	after.HouseholdMemberID = p.HouseholdMemberID
	after.Date = date
	after.AmountCents = p.AmountCents
	after.Description = desc

	var diff changeset.Diff
	if changeset.Compare(&diff, "household_member_id", income.HouseholdMemberID, after.HouseholdMemberID) {
		if err := requireOwned[models.HouseholdMember](db, householdID, after.HouseholdMemberID, apperrors.ErrIncomeMemberNotFound); err != nil {
			return err
		}
	}
	changeset.Compare(&diff, "date", income.Date, after.Date)
	changeset.Compare(&diff, "amount_cents", income.AmountCents, after.AmountCents)
	changeset.Compare(&diff, "description", income.Description, after.Description)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(income, &after, &diff)
	})
}

// DeleteIncome deletes an income entry.
func (s *incomeService) DeleteIncome(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	income, err := mustFind[models.Income](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrIncomeNotFound)
	if err != nil {
		return err
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(income)
	})
}

// GetIncome retrieves an income entry by id.
func (s *incomeService) GetIncome(ctx context.Context, p GetParams) (*models.Income, error) {
	return getOwned[models.Income](ctx, s.db, p, apperrors.ErrIncomeNotFound)
}

// ListIncome retrieves a page of the household's income.
func (s *incomeService) ListIncome(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Income], error) {
	return listOwned[models.Income](ctx, s.db, p)
}

package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

type householdMemberService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewHouseholdMemberService creates a new HouseholdMemberServicer.
func NewHouseholdMemberService(db *gorm.DB, audit AuditServicer) HouseholdMemberServicer {
	return &householdMemberService{db: db, audit: audit}
}

func (s *householdMemberService) CreateHouseholdMember(ctx context.Context, p CreateHouseholdMemberParams) (string, error) {
	name, err := requireText(p.Name, apperrors.ErrMemberInvalidName)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}

	member := &models.HouseholdMember{HouseholdID: householdID, Name: name}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(member)
	})
	if err != nil {
		return "", err
	}
	return member.ID, nil
}

func (s *householdMemberService) UpdateHouseholdMember(ctx context.Context, p UpdateHouseholdMemberParams) error {
	name, err := requireText(p.Name, apperrors.ErrMemberInvalidName)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	member, err := mustFind[models.HouseholdMember](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrMemberNotFound)
	if err != nil {
		return err
	}

	after := *member
	after.Name = name

	var diff changeset.Diff
	changeset.Compare(&diff, "name", member.Name, after.Name)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(member, &after, &diff)
	})
}

// DeleteHouseholdMember deletes a member with no expenses and no income.
func (s *householdMemberService) DeleteHouseholdMember(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	member, err := mustFind[models.HouseholdMember](db, householdID, p.ID, apperrors.ErrMemberNotFound)
	if err != nil {
		return err
	}

	n, err := countWhere(db, &models.Expense{}, "household_member_id = ?", member.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrMemberHasExpenses
	}
	n, err = countWhere(db, &models.Income{}, "household_member_id = ?", member.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrMemberHasIncome
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(member)
	})
}

func (s *householdMemberService) GetHouseholdMember(ctx context.Context, p GetParams) (*models.HouseholdMember, error) {
	return getOwned[models.HouseholdMember](ctx, s.db, p, apperrors.ErrMemberNotFound)
}

func (s *householdMemberService) ListHouseholdMembers(ctx context.Context, p ListParams) (*pagination.PageResponse[models.HouseholdMember], error) {
	return listOwned[models.HouseholdMember](ctx, s.db, p)
}

package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

type subcategoryService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewSubcategoryService creates a new SubcategoryServicer.
func NewSubcategoryService(db *gorm.DB, audit AuditServicer) SubcategoryServicer {
	return &subcategoryService{db: db, audit: audit}
}

func (s *subcategoryService) CreateSubcategory(ctx context.Context, p CreateSubcategoryParams) (string, error) {
	if err := requireRef(p.CategoryID, apperrors.ErrSubcategoryInvalidCategory); err != nil {
		return "", err
	}
	name, err := requireText(p.Name, apperrors.ErrSubcategoryInvalidName)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}
	if err := requireOwned[models.Category](s.db.WithContext(ctx), householdID, p.CategoryID, apperrors.ErrSubcategoryCategoryNotFound); err != nil {
		return "", err
	}

	sub := &models.Subcategory{CategoryID: p.CategoryID, Name: name}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(sub)
	})
	if err != nil {
		return "", err
	}
	return sub.ID, nil
}

// UpdateSubcategory renames a subcategory or moves it to another category of the
// same household.
func (s *subcategoryService) UpdateSubcategory(ctx context.Context, p UpdateSubcategoryParams) error {
	if err := requireRef(p.CategoryID, apperrors.ErrSubcategoryInvalidCategory); err != nil {
		return err
	}
	name, err := requireText(p.Name, apperrors.ErrSubcategoryInvalidName)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	sub, err := mustFind[models.Subcategory](db, householdID, p.ID, apperrors.ErrSubcategoryNotFound)
	if err != nil {
		return err
	}

	after := *sub
	after.CategoryID = p.CategoryID
	after.Name = name

	var diff changeset.Diff
	if changeset.Compare(&diff, "category_id", sub.CategoryID, after.CategoryID) {
		if err := requireOwned[models.Category](db, householdID, after.CategoryID, apperrors.ErrSubcategoryCategoryNotFound); err != nil {
			return err
		}
	}
	changeset.Compare(&diff, "name", sub.Name, after.Name)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(sub, &after, &diff)
	})
}

// DeleteSubcategory deletes a subcategory no expense or budget refers to.
func (s *subcategoryService) DeleteSubcategory(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	sub, err := mustFind[models.Subcategory](db, householdID, p.ID, apperrors.ErrSubcategoryNotFound)
	if err != nil {
		return err
	}

	n, err := countWhere(db, &models.Expense{}, "subcategory_id = ?", sub.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrSubcategoryHasExpenses
	}
	n, err = countWhere(db, &models.Budget{}, "subcategory_id = ?", sub.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrSubcategoryHasBudgets
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(sub)
	})
}

func (s *subcategoryService) GetSubcategory(ctx context.Context, p GetParams) (*models.Subcategory, error) {
	return getOwned[models.Subcategory](ctx, s.db, p, apperrors.ErrSubcategoryNotFound)
}

func (s *subcategoryService) ListSubcategories(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Subcategory], error) {
	return listOwned[models.Subcategory](ctx, s.db, p)
}

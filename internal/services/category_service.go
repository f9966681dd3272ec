package services

import (
	"context"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, audit AuditServicer) CategoryServicer {
	return &categoryService{db: db, audit: audit}
}

// CreateCategory creates a category in the caller's household and returns its id.
func (s *categoryService) CreateCategory(ctx context.Context, p CreateCategoryParams) (string, error) {
	name, err := requireText(p.Name, apperrors.ErrCategoryInvalidName)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}

	category := &models.Category{HouseholdID: householdID, Name: name}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(category)
	})
	if err != nil {
		return "", err
	}
	return category.ID, nil
}

// UpdateCategory renames a category. Supplying the current name writes nothing.
func (s *categoryService) UpdateCategory(ctx context.Context, p UpdateCategoryParams) error {
	name, err := requireText(p.Name, apperrors.ErrCategoryInvalidName)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	category, err := mustFind[models.Category](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	after := *category
	after.Name = name

	var diff changeset.Diff
	changeset.Compare(&diff, "name", category.Name, after.Name)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(category, &after, &diff)
	})
}

// DeleteCategory deletes a category that has no subcategories.
func (s *categoryService) DeleteCategory(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	category, err := mustFind[models.Category](db, householdID, p.ID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	n, err := countWhere(db, &models.Subcategory{}, "category_id = ?", category.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrCategoryHasSubcategory
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(category)
	})
}

// GetCategory retrieves a category by id.
func (s *categoryService) GetCategory(ctx context.Context, p GetParams) (*models.Category, error) {
	return getOwned[models.Category](ctx, s.db, p, apperrors.ErrCategoryNotFound)
}

// ListCategories retrieves a page of the household's categories.
func (s *categoryService) ListCategories(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Category], error) {
	return listOwned[models.Category](ctx, s.db, p)
}

package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

type vendorService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewVendorService creates a new VendorServicer.
func NewVendorService(db *gorm.DB, audit AuditServicer) VendorServicer {
	return &vendorService{db: db, audit: audit}
}

func (s *vendorService) CreateVendor(ctx context.Context, p CreateVendorParams) (string, error) {
	name, err := requireText(p.Name, apperrors.ErrVendorInvalidName)
	if err != nil {
		return "", err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return "", err
	}

	vendor := &models.Vendor{
		HouseholdID: householdID,
		Name:        name,
		Description: strings.TrimSpace(p.Description),
	}
	err = runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.create(vendor)
	})
	if err != nil {
		return "", err
	}
	return vendor.ID, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, p UpdateVendorParams) error {
	name, err := requireText(p.Name, apperrors.ErrVendorInvalidName)
	if err != nil {
		return err
	}

	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	vendor, err := mustFind[models.Vendor](s.db.WithContext(ctx), householdID, p.ID, apperrors.ErrVendorNotFound)
	if err != nil {
		return err
	}

	after := *vendor
	after.Name = name
	after.Description = strings.TrimSpace(p.Description)

	var diff changeset.Diff
	changeset.Compare(&diff, "name", vendor.Name, after.Name)
	changeset.Compare(&diff, "description", vendor.Description, after.Description)
	if diff.Empty() {
		return nil
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.update(vendor, &after, &diff)
	})
}

func (s *vendorService) DeleteVendor(ctx context.Context, p DeleteParams) error {
	householdID, err := resolveHousehold(ctx, s.db, p.AuditAPICallID)
	if err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	vendor, err := mustFind[models.Vendor](db, householdID, p.ID, apperrors.ErrVendorNotFound)
	if err != nil {
		return err
	}

	n, err := countWhere(db, &models.Expense{}, "vendor_id = ?", vendor.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrVendorHasExpenses
	}

	return runUnitOfWork(ctx, s.db, s.audit, p.AuditAPICallID, func(u *unitOfWork) error {
		return u.delete(vendor)
	})
}

func (s *vendorService) GetVendor(ctx context.Context, p GetParams) (*models.Vendor, error) {
	return getOwned[models.Vendor](ctx, s.db, p, apperrors.ErrVendorNotFound)
}

func (s *vendorService) ListVendors(ctx context.Context, p ListParams) (*pagination.PageResponse[models.Vendor], error) {
	return listOwned[models.Vendor](ctx, s.db, p)
}

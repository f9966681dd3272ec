package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
	"hearth/internal/scope"
	"hearth/internal/uuid"
)

// resolveHousehold maps an API call to the household of the user who made it.
// Every read and write of a service starts here.
func resolveHousehold(ctx context.Context, db *gorm.DB, auditAPICallID string) (string, error) {
	if !uuid.IsValid(auditAPICallID) {
		return "", apperrors.ErrMissingAuditCall
	}

	var call models.AuditAPICall
	tx := db.WithContext(ctx).Where("id = ?", auditAPICallID).Limit(1).Find(&call)
	if tx.Error != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, tx.Error)
	}
	if tx.RowsAffected == 0 || call.UserID == "" {
		return "", apperrors.ErrMissingAuditCall
	}

	var user models.User
	tx = db.WithContext(ctx).Where("id = ?", call.UserID).Limit(1).Find(&user)
	if tx.Error != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return "", apperrors.ErrAuditUserNotFound
	}
	return user.HouseholdID, nil
}

// mustFind loads a household-owned row or fails with notFound.
func mustFind[T any, P scope.OwnedPtr[T]](db *gorm.DB, householdID, id string, notFound *apperrors.AppError) (*T, error) {
	row, found, err := scope.Find[T, P](db, householdID, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, notFound
	}
	return row, nil
}

// requireOwned checks that a referenced row belongs to the household and fails
// with notFound otherwise. A missing row and a row of another household fail the
// same way.
func requireOwned[T any, P scope.OwnedPtr[T]](db *gorm.DB, householdID, id string, notFound *apperrors.AppError) error {
	found, err := scope.Exists[T, P](db, householdID, id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return notFound
	}
	return nil
}

// countWhere counts live rows of model matching the condition.
func countWhere(db *gorm.DB, model any, query string, args ...any) (int64, error) {
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return n, nil
}

// listOwned returns one page of household rows.
func listOwned[T any, P scope.OwnedPtr[T]](ctx context.Context, db *gorm.DB, p ListParams) (*pagination.PageResponse[T], error) {
	householdID, err := resolveHousehold(ctx, db, p.AuditAPICallID)
	if err != nil {
		return nil, err
	}
	page := p.Page
	page.Defaults()
	rows, total, err := scope.List[T, P](db.WithContext(ctx), householdID, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	resp := pagination.NewPageResponse(rows, page.Page, page.PageSize, total)
	return &resp, nil
}

// getOwned loads one household row for a read.
func getOwned[T any, P scope.OwnedPtr[T]](ctx context.Context, db *gorm.DB, p GetParams, notFound *apperrors.AppError) (*T, error) {
	householdID, err := resolveHousehold(ctx, db, p.AuditAPICallID)
	if err != nil {
		return nil, err
	}
	return mustFind[T, P](db.WithContext(ctx), householdID, p.ID, notFound)
}

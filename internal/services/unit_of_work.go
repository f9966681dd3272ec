package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hearth/internal/changeset"
	"hearth/internal/database"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// unitOfWork is one mutating transaction. Every write goes through it so the
// change set handed to the audit trail matches what was written.
type unitOfWork struct {
	tx      *gorm.DB
	changes ChangeSet
}

func (u *unitOfWork) create(row models.Record) error {
	if err := u.tx.Create(row).Error; err != nil {
		return err
	}
	u.changes.New = append(u.changes.New, row)
	return nil
}

// update writes the diffed columns of after, whose primary key is set.
func (u *unitOfWork) update(before, after models.Record, diff *changeset.Diff) error {
	if diff.Empty() {
		return nil
	}
	if err := u.tx.Model(after).Updates(diff.Updates()).Error; err != nil {
		return err
	}
	u.changes.Changed = append(u.changes.Changed, Change{Before: before, After: after})
	return nil
}

func (u *unitOfWork) delete(row models.Record) error {
	if err := u.tx.Delete(row).Error; err != nil {
		return err
	}
	u.changes.Deleted = append(u.changes.Deleted, row)
	return nil
}

// runUnitOfWork runs fn in a REPEATABLE READ transaction and records the change
// set against the API call as the transaction's last statement. Any failure,
// including the audit write, rolls everything back.
func runUnitOfWork(ctx context.Context, db *gorm.DB, audit AuditServicer, auditAPICallID string, fn func(u *unitOfWork) error) error {
	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		u := &unitOfWork{tx: tx}
		if err := fn(u); err != nil {
			return err
		}
		if u.changes.Empty() {
			return nil
		}
		return audit.TrackChanges(ctx, tx, auditAPICallID, u.changes)
	})
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

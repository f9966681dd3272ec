package services

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "hearth/internal/errors"
	"hearth/internal/logger"
	"hearth/internal/models"
	"hearth/internal/uuid"
)

// auditService records API calls and snapshots the rows each call touched.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// RecordAPICall persists the call before the handler runs.
func (s *auditService) RecordAPICall(ctx context.Context, call *models.AuditAPICall) error {
	if call == nil || !uuid.IsValid(call.UserID) {
		return apperrors.ErrMissingAuditCall
	}
	if err := s.db.WithContext(ctx).Create(call).Error; err != nil {
		logger.Get().Errorw("failed to record api call", "error", err, "user_id", call.UserID, "path", call.Path)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CompleteAPICall stores the response status of a recorded call.
func (s *auditService) CompleteAPICall(ctx context.Context, auditAPICallID string, statusCode int) error {
	if !uuid.IsValid(auditAPICallID) {
		return apperrors.ErrMissingAuditCall
	}
	res := s.db.WithContext(ctx).
		Model(&models.AuditAPICall{}).
		Where("id = ?", auditAPICallID).
		Update("status_code", statusCode)
	if res.Error != nil {
		logger.Get().Errorw("failed to complete api call", "error", res.Error, "audit_api_call_id", auditAPICallID)
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMissingAuditCall
	}
	return nil
}

type auditKey struct {
	table  string
	id     string
	action models.AuditAction
}

// TrackChanges writes one audit_changes row per (row, action) through tx. A row
// tracked twice under the same call keeps its first old snapshot and its last new
// snapshot, both within one change set and across calls in the same transaction.
func (s *auditService) TrackChanges(ctx context.Context, tx *gorm.DB, auditAPICallID string, changes ChangeSet) error {
	if tx == nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("track changes outside a transaction"))
	}
	if !uuid.IsValid(auditAPICallID) {
		return apperrors.ErrMissingAuditCall
	}
	if changes.Empty() {
		return nil
	}

	var (
		entries []*models.AuditChange
		index   = map[auditKey]*models.AuditChange{}
	)
	add := func(action models.AuditAction, before, after models.Record) error {
		row := after
		if row == nil {
			row = before
		}
		oldValues, err := snapshot(before)
		if err != nil {
			return err
		}
		newValues, err := snapshot(after)
		if err != nil {
			return err
		}

		key := auditKey{table: row.TableName(), id: row.RecordID(), action: action}
		if e, ok := index[key]; ok {
			e.NewValues = newValues
			return nil
		}
		e := &models.AuditChange{
			AuditAPICallID: auditAPICallID,
			EntityTable:    key.table,
			EntityID:       key.id,
			Action:         action,
			OldValues:      oldValues,
			NewValues:      newValues,
		}
		index[key] = e
		entries = append(entries, e)
		return nil
	}

	for _, r := range changes.New {
		if err := add(models.AuditActionNew, nil, r); err != nil {
			return err
		}
	}
	for _, c := range changes.Changed {
		if err := add(models.AuditActionChanged, c.Before, c.After); err != nil {
			return err
		}
	}
	for _, r := range changes.Deleted {
		if err := add(models.AuditActionDeleted, r, nil); err != nil {
			return err
		}
	}

	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "audit_api_call_id"},
			{Name: "entity_table"},
			{Name: "entity_id"},
			{Name: "action"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"new_values", "updated_at"}),
	}).Create(&entries).Error
	if err != nil {
		logger.Get().Errorw("failed to track changes", "error", err, "audit_api_call_id", auditAPICallID)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func snapshot(r models.Record) (string, error) {
	if r == nil {
		return "", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(b), nil
}

// Package scope is the single entry point for household-scoped reads. Every lookup
// of a household-owned row goes through Find or List so no unscoped query can leak
// rows of another household.
package scope

import (
	"errors"

	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/pagination"
	"hearth/internal/uuid"
)

// OwnedPtr is the pointer type of a household-owned model.
type OwnedPtr[T any] interface {
	*T
	models.Owned
}

// Query returns a query over T's table restricted to the household.
func Query[T any, P OwnedPtr[T]](db *gorm.DB, householdID string) *gorm.DB {
	p := P(new(T))
	return p.OwnedBy(db.Model(p), householdID)
}

// Find loads the row of type T with the given id when it belongs to the household.
// found is false both when the row does not exist and when it belongs to another
// household; callers must not distinguish the two. Malformed ids are never found.
func Find[T any, P OwnedPtr[T]](db *gorm.DB, householdID, id string) (row *T, found bool, err error) {
	if !uuid.IsValid(id) {
		return nil, false, nil
	}

	row = new(T)
	p := P(row)
	table := p.TableName()
	err = p.OwnedBy(db.Select(table+".*"), householdID).
		Where(table+".id = ?", id).
		First(row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// Exists reports whether the row with the given id belongs to the household.
func Exists[T any, P OwnedPtr[T]](db *gorm.DB, householdID, id string) (bool, error) {
	_, found, err := Find[T, P](db, householdID, id)
	return found, err
}

// List returns one page of the household's T rows, newest first.
func List[T any, P OwnedPtr[T]](db *gorm.DB, householdID string, page pagination.PageRequest) ([]T, int64, error) {
	page.Defaults()
	table := P(new(T)).TableName()

	var total int64
	if err := Query[T, P](db, householdID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	if err := Query[T, P](db, householdID).
		Select(table + ".*").
		Order(table + ".created_at DESC").
		Order(table + ".id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

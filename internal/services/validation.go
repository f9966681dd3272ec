package services

import (
	"strings"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/uuid"
)

// Field checks run in a fixed order before any database access; the first
// failing check decides the error.

func requireText(s string, invalid *apperrors.AppError) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid
	}
	return s, nil
}

func requireRef(id string, invalid *apperrors.AppError) error {
	if !uuid.IsValid(id) {
		return invalid
	}
	return nil
}

// optionalRef treats nil and "" as no reference.
func optionalRef(id *string, invalid *apperrors.AppError) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	if !uuid.IsValid(*id) {
		return nil, invalid
	}
	ref := *id
	return &ref, nil
}

func requireDate(s string, invalid *apperrors.AppError) (models.Date, error) {
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return "", invalid
	}
	return d, nil
}

func requirePositive(cents int64, invalid *apperrors.AppError) error {
	if cents <= 0 {
		return invalid
	}
	return nil
}

func requireRange(v, lo, hi int, invalid *apperrors.AppError) error {
	if v < lo || v > hi {
		return invalid
	}
	return nil
}

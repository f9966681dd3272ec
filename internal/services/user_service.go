package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hearth/internal/database"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/uuid"
)

const minPasswordLength = 8

// userService handles registration and login.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a household and its first user in one transaction. No API
// call exists yet, so registration is not audited.
func (s *userService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	householdName, err := requireText(p.HouseholdName, apperrors.ErrInvalidHousehold)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, apperrors.ErrInvalidEmail
	}
	if len(p.Password) < minPasswordLength {
		return nil, apperrors.ErrInvalidPassword
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	household := &models.Household{Name: householdName}
	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		IsActive:  true,
	}
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Create(household).Error; err != nil {
			return err
		}
		user.HouseholdID = household.ID
		return tx.Create(user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.Household = *household
	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user together with their household
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.ErrUserNotFound
	}
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Household").Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// AttemptLogin verifies the credentials and stamps the login time. Unknown
// emails and wrong passwords fail the same way.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.db.WithContext(ctx).Model(user).Update("last_login_at", now).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.LastLoginAt = &now
	return user, nil
}

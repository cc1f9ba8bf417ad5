package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Alidiabb/quickcounsel/internal/models"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"gorm.io/gorm"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

// RegisterInput carries the raw registration fields. The lawyer fields are
// only read when Role normalizes to lawyer.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	DateOfBirth     string
	Gender          string
	Role            string
	BarNumber       string
	MemberSince     string
	Specialization1 string
	Specialization2 string
}

// Register validates in, creates the user and, for lawyers, the profile.
// A taken email is reported before date and password problems. The user and
// profile inserts share one transaction.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.DateOfBirth == "" || in.Gender == "" || in.Role == "" {
		return nil, ErrMissingFields
	}

	gender, ok := models.ParseGender(in.Gender)
	if !ok {
		return nil, ErrInvalidGender
	}
	role, ok := models.ParseUserRole(in.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	db := s.DB.WithContext(ctx)
	email := models.NormalizeEmail(in.Email)

	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("services: check existing email: %w", err)
	}
	if existing > 0 {
		return nil, ErrDuplicateEmail
	}

	dateOfBirth, err := parseDate("date_of_birth", in.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if len(in.Password) > utils.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("services: hash password: %w", err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
		Gender:       gender,
		Role:         role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("services: create user: %w", err)
		}

		if role != models.UserRoleLawyer {
			return nil
		}
		return createLawyerProfile(tx, user.ID, in)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user_registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	})

	return &user, nil
}

func createLawyerProfile(tx *gorm.DB, userID uint, in RegisterInput) error {
	if in.BarNumber == "" || in.MemberSince == "" || in.Specialization1 == "" {
		return ErrMissingLawyerFields
	}
	memberSince, err := parseDate("member_since", in.MemberSince)
	if err != nil {
		return err
	}

	var taken int64
	if err := tx.Model(&models.LawyerProfile{}).Where("bar_number = ?", in.BarNumber).Count(&taken).Error; err != nil {
		return fmt.Errorf("services: check bar number: %w", err)
	}
	if taken > 0 {
		return ErrDuplicateBarNumber
	}

	profile := models.LawyerProfile{
		UserID:          userID,
		BarNumber:       in.BarNumber,
		MemberSince:     memberSince,
		Specialization1: in.Specialization1,
		Specialization2: optional(in.Specialization2),
	}
	if err := tx.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateBarNumber
		}
		return fmt.Errorf("services: create lawyer profile: %w", err)
	}
	return nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials. Unknown email and wrong password fail with the
// same ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}
	email := models.NormalizeEmail(in.Email)

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("login_failed_user_not_found", map[string]interface{}{
				"email": email,
			})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("services: find user: %w", err)
	}

	if !utils.CheckPassword(in.Password, user.PasswordHash) {
		logger.WarnWithUser(strconv.FormatUint(uint64(user.ID), 10), "login_failed_invalid_password", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	logger.InfoWithUser(strconv.FormatUint(uint64(user.ID), 10), "user_login", map[string]interface{}{
		"email": user.Email,
		"role":  string(user.Role),
	})

	return &user, nil
}

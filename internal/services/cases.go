package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/models"
	"gorm.io/gorm"
)

type CaseService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewCaseService(db *gorm.DB) *CaseService {
	return &CaseService{
		DB: db,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type AddCaseInput struct {
	LawyerUserID string
	Title        string
	Details      string
}

func (s *CaseService) Add(ctx context.Context, in AddCaseInput) (*models.LawyerCase, error) {
	if in.LawyerUserID == "" || in.Title == "" || in.Details == "" {
		return nil, ErrMissingCaseFields
	}
	lawyerID, err := parseID("lawyer_user_id", in.LawyerUserID)
	if err != nil {
		return nil, err
	}

	lawyerCase := models.LawyerCase{
		LawyerUserID: lawyerID,
		Title:        in.Title,
		Details:      in.Details,
		CreatedAt:    s.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&lawyerCase).Error; err != nil {
		return nil, fmt.Errorf("services: create case: %w", err)
	}

	return &lawyerCase, nil
}

// List returns the lawyer's cases, newest first.
func (s *CaseService) List(ctx context.Context, rawUserID string) ([]models.LawyerCase, error) {
	if rawUserID == "" {
		return nil, ErrMissingUserID
	}
	lawyerID, err := parseID("user_id", rawUserID)
	if err != nil {
		return nil, err
	}

	cases := []models.LawyerCase{}
	err = s.DB.WithContext(ctx).
		Where("lawyer_user_id = ?", lawyerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("services: list cases: %w", err)
	}

	return cases, nil
}

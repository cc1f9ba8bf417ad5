package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/models"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"gorm.io/gorm"
)

// avgRatingExpr is 0 for lawyers without reviews.
const avgRatingExpr = "CAST(COALESCE(AVG(r.rating), 0) AS DOUBLE PRECISION)"

type LawyerService struct {
	DB *gorm.DB
}

func NewLawyerService(db *gorm.DB) *LawyerService {
	return &LawyerService{DB: db}
}

type LawyerSummary struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Specialization1 string  `json:"specialization_1" gorm:"column:specialization_1"`
	Specialization2 *string `json:"specialization_2" gorm:"column:specialization_2"`
	AvgRating       float64 `json:"avg_rating"`
}

type LawyerDetail struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	BarNumber       string  `json:"bar_number"`
	MemberSince     string  `json:"member_since"`
	Specialization1 string  `json:"specialization_1"`
	Specialization2 *string `json:"specialization_2"`
	Description     string  `json:"description"`
	AvgRating       float64 `json:"avg_rating"`
}

type lawyerDetailRow struct {
	ID              uint
	Name            string
	Email           string
	BarNumber       string
	MemberSince     time.Time
	Specialization1 string  `gorm:"column:specialization_1"`
	Specialization2 *string `gorm:"column:specialization_2"`
	Description     *string
	AvgRating       float64
}

func (s *LawyerService) lawyersWithRatings(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("users AS u").
		Joins("INNER JOIN lawyer_profiles lp ON lp.user_id = u.id").
		Joins("LEFT JOIN lawyer_reviews r ON r.lawyer_user_id = u.id").
		Where("u.role = ?", models.UserRoleLawyer)
}

// Search lists lawyers practising specialization, best rated first.
func (s *LawyerService) Search(ctx context.Context, specialization string) ([]LawyerSummary, error) {
	if specialization == "" {
		return nil, ErrMissingSpecialization
	}

	lawyers := []LawyerSummary{}
	err := s.lawyersWithRatings(ctx).
		Select("u.id, u.name, u.email, lp.specialization_1, lp.specialization_2, "+avgRatingExpr+" AS avg_rating").
		Where("(lp.specialization_1 = ? OR lp.specialization_2 = ?)", specialization, specialization).
		Group("u.id, u.name, u.email, lp.specialization_1, lp.specialization_2").
		Order("avg_rating DESC").
		Order("u.id ASC").
		Scan(&lawyers).Error
	if err != nil {
		return nil, fmt.Errorf("services: search lawyers: %w", err)
	}

	return lawyers, nil
}

// Profile returns the public profile of the lawyer identified by rawUserID.
func (s *LawyerService) Profile(ctx context.Context, rawUserID string) (*LawyerDetail, error) {
	if rawUserID == "" {
		return nil, ErrMissingUserID
	}
	userID, err := parseID("user_id", rawUserID)
	if err != nil {
		return nil, err
	}

	var rows []lawyerDetailRow
	err = s.lawyersWithRatings(ctx).
		Select("u.id, u.name, u.email, lp.bar_number, lp.member_since, lp.specialization_1, lp.specialization_2, lp.description, "+avgRatingExpr+" AS avg_rating").
		Where("u.id = ?", userID).
		Group("u.id, u.name, u.email, lp.bar_number, lp.member_since, lp.specialization_1, lp.specialization_2, lp.description").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("services: lawyer profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrLawyerNotFound
	}

	row := rows[0]
	detail := &LawyerDetail{
		ID:              row.ID,
		Name:            row.Name,
		Email:           row.Email,
		BarNumber:       row.BarNumber,
		MemberSince:     row.MemberSince.Format(models.DateLayout),
		Specialization1: row.Specialization1,
		Specialization2: row.Specialization2,
		AvgRating:       row.AvgRating,
	}
	if row.Description != nil {
		detail.Description = *row.Description
	}

	return detail, nil
}

// UpdateDescription overwrites the profile description. A user without a
// profile is not an error; nothing is updated.
func (s *LawyerService) UpdateDescription(ctx context.Context, rawUserID, description string) error {
	if rawUserID == "" {
		return ErrMissingUserID
	}
	userID, err := parseID("user_id", rawUserID)
	if err != nil {
		return err
	}

	result := s.DB.WithContext(ctx).
		Model(&models.LawyerProfile{}).
		Where("user_id = ?", userID).
		Update("description", description)
	if result.Error != nil {
		return fmt.Errorf("services: update description: %w", result.Error)
	}

	logger.Info("lawyer_description_updated", map[string]interface{}{
		"user_id":       userID,
		"rows_affected": result.RowsAffected,
	})

	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/Alidiabb/quickcounsel/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

type RateInput struct {
	LawyerUserID string
	ClientUserID string
	Rating       string
}

// Rate stores the client's rating of the lawyer, replacing any earlier
// rating from the same client. Neither id is checked against users.
func (s *ReviewService) Rate(ctx context.Context, in RateInput) (*models.LawyerReview, error) {
	if in.LawyerUserID == "" || in.ClientUserID == "" || in.Rating == "" {
		return nil, ErrMissingRateFields
	}

	rating, err := ParseRating(in.Rating)
	if err != nil {
		return nil, err
	}
	lawyerID, err := parseID("lawyer_user_id", in.LawyerUserID)
	if err != nil {
		return nil, err
	}
	clientID, err := parseID("client_user_id", in.ClientUserID)
	if err != nil {
		return nil, err
	}

	review := models.LawyerReview{
		LawyerUserID: lawyerID,
		ClientUserID: clientID,
		Rating:       rating,
	}
	err = s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lawyer_user_id"}, {Name: "client_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(&review).Error
	if err != nil {
		return nil, fmt.Errorf("services: upsert review: %w", err)
	}

	return &review, nil
}

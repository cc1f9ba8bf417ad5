package models

import "time"

// LawyerProfile holds the professional details of a user with role lawyer.
// Only Description changes after registration.
type LawyerProfile struct {
	UserID          uint      `gorm:"primaryKey;autoIncrement:false"`
	BarNumber       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	MemberSince     time.Time `gorm:"type:date;not null"`
	Specialization1 string    `gorm:"column:specialization_1;type:varchar(100);not null;index"`
	Specialization2 *string   `gorm:"column:specialization_2;type:varchar(100);index"`
	Description     *string   `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (LawyerProfile) TableName() string {
	return "lawyer_profiles"
}

// LawyerReview is one client's rating of one lawyer. The pair is unique;
// a repeat rating replaces the stored value.
type LawyerReview struct {
	BaseModel
	LawyerUserID uint `gorm:"not null;uniqueIndex:idx_lawyer_reviews_pair"`
	ClientUserID uint `gorm:"not null;uniqueIndex:idx_lawyer_reviews_pair"`
	Rating       int  `gorm:"not null"`
}

func (LawyerReview) TableName() string {
	return "lawyer_reviews"
}

// LawyerCase is an append-only case note.
type LawyerCase struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LawyerUserID uint      `json:"-" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Details      string    `json:"details" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;index"`
}

func (LawyerCase) TableName() string {
	return "lawyer_cases"
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&LawyerProfile{},
		&LawyerReview{},
		&LawyerCase{},
	}
}

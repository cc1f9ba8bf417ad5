package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleLawyer UserRole = "lawyer"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type User struct {
	BaseModel
	Name          string         `json:"name" gorm:"type:varchar(255);not null"`
	Email         string         `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string         `json:"-" gorm:"type:text;not null"`
	DateOfBirth   time.Time      `json:"-" gorm:"type:date;not null"`
	Gender        Gender         `json:"-" gorm:"type:varchar(10);not null"`
	Role          UserRole       `json:"role" gorm:"type:varchar(10);not null;index"`
	LawyerProfile *LawyerProfile `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// ParseUserRole normalizes raw and reports whether it names a known role.
func ParseUserRole(raw string) (UserRole, bool) {
	role := UserRole(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case UserRoleClient, UserRoleLawyer:
		return role, true
	default:
		return "", false
	}
}

// ParseGender normalizes raw and reports whether it names a known gender.
func ParseGender(raw string) (Gender, bool) {
	gender := Gender(strings.ToLower(strings.TrimSpace(raw)))
	switch gender {
	case GenderMale, GenderFemale:
		return gender, true
	default:
		return "", false
	}
}

// NormalizeEmail is the canonical form used for storage and lookup.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

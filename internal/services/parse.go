package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/models"
)

func parseID(field, raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, invalidField(field)
	}
	return uint(id), nil
}

func parseDate(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, invalidField(field)
}

// ParseRating reads the leading integer of raw, so "4", "4.7" and "4 stars"
// all yield 4, and rejects values outside 1..5.
func ParseRating(raw string) (int, error) {
	s := strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, ErrInvalidRating
	}

	rating, err := strconv.Atoi(s[:end])
	if err != nil || rating < 1 || rating > 5 {
		return 0, ErrInvalidRating
	}
	return rating, nil
}

func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

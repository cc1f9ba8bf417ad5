//go:build integration

package database

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/config"
	"github.com/Alidiabb/quickcounsel/internal/models"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm/clause"
)

func startPostgres(t *testing.T) config.DBConfig {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("quickcounsel"),
		postgres.WithUsername("quickcounsel"),
		postgres.WithPassword("quickcounsel"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("resolve connection string: %v", err)
	}
	parsed, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	password, _ := parsed.User.Password()

	return config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     parsed.Hostname(),
		Port:     parsed.Port(),
		User:     parsed.User.Username(),
		Password: password,
		Name:     "quickcounsel",
		SSLMode:  "disable",
	}
}

func TestPostgresSchemaAndUpsert(t *testing.T) {
	db, err := Connect(startPostgres(t))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	lawyer := models.User{
		Name:         "Lee",
		Email:        "lee@example.com",
		PasswordHash: "x",
		DateOfBirth:  time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:       models.GenderFemale,
		Role:         models.UserRoleLawyer,
	}
	if err := db.Create(&lawyer).Error; err != nil {
		t.Fatalf("create lawyer: %v", err)
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "lawyer_user_id"}, {Name: "client_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}
	for _, rating := range []int{4, 2} {
		review := models.LawyerReview{LawyerUserID: lawyer.ID, ClientUserID: 5, Rating: rating}
		if err := db.Clauses(upsert).Create(&review).Error; err != nil {
			t.Fatalf("upsert rating %d: %v", rating, err)
		}
	}

	var avg float64
	if err := db.Raw("SELECT COALESCE(AVG(rating), 0) FROM lawyer_reviews WHERE lawyer_user_id = ?", lawyer.ID).Scan(&avg).Error; err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 2 {
		t.Fatalf("expected average 2 after overwrite, got %v", avg)
	}
}

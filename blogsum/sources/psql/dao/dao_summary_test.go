package dao

import (
	"context"
	"testing"
	"time"

	"blogsum/blogsum/sources/psql/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDAO(t *testing.T) *SummaryDAO {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Summary{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSummaryDAO(db)
}

func TestCreateAndGetSummary(t *testing.T) {
	summaryDAO := setupDAO(t)

	row := &models.Summary{
		URL:            "https://example.com/post",
		Title:          "A Post",
		EnglishSummary: "An English summary.",
		UrduSummary:    "ایک اردو خلاصہ",
	}
	if err := summaryDAO.CreateSummary(context.Background(), row); err != nil {
		t.Fatalf("create: %v", err)
	}
	if row.ID == 0 {
		t.Fatal("store should assign an id")
	}

	got, err := summaryDAO.GetSummaryByID(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.EnglishSummary != "An English summary." || got.UrduSummary != "ایک اردو خلاصہ" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestGetSummaryByIDMissing(t *testing.T) {
	summaryDAO := setupDAO(t)

	got, err := summaryDAO.GetSummaryByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for a missing row, got %+v", got)
	}
}

func TestGetAllSummariesOrdered(t *testing.T) {
	summaryDAO := setupDAO(t)
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	// inserted out of order on purpose
	for _, row := range []*models.Summary{
		{URL: "https://b.example", Title: "Middle", CreatedAt: base.Add(time.Hour)},
		{URL: "https://a.example", Title: "Oldest", CreatedAt: base},
		{URL: "https://c.example", Title: "Newest", CreatedAt: base.Add(2 * time.Hour)},
	} {
		if err := summaryDAO.CreateSummary(context.Background(), row); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := summaryDAO.GetAllSummaries(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []string{"Newest", "Middle", "Oldest"} {
		if rows[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, rows[i].Title)
		}
	}
}

func TestDeleteSummary(t *testing.T) {
	summaryDAO := setupDAO(t)

	row := &models.Summary{URL: "https://example.com", Title: "Doomed"}
	if err := summaryDAO.CreateSummary(context.Background(), row); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := summaryDAO.DeleteSummary(context.Background(), row.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := summaryDAO.GetSummaryByID(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected row gone, got %+v", got)
	}
}

package service

import (
	"strings"
	"testing"

	"beforeafter/models"
)

func TestGalleryCreate(t *testing.T) {
	db := setupTestDB(t)
	s := NewGalleryService(db)

	gallery, err := s.Create(models.GalleryCreate{Title: "Kitchen Remodel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gallery.ID == "" {
		t.Fatalf("expected generated id")
	}
	if gallery.Slug != "kitchen-remodel" {
		t.Fatalf("expected slug derived from title, got %q", gallery.Slug)
	}
	if gallery.Mode != "slider" {
		t.Fatalf("expected default mode slider, got %q", gallery.Mode)
	}
	if !gallery.Published {
		t.Fatalf("expected published by default")
	}
}

func TestGalleryCreate_MissingTitle(t *testing.T) {
	db := setupTestDB(t)
	s := NewGalleryService(db)

	if _, err := s.Create(models.GalleryCreate{Title: "   "}); err == nil {
		t.Fatalf("expected error for blank title")
	}
}

func TestPublishedSlugs(t *testing.T) {
	db := setupTestDB(t)
	s := NewGalleryService(db)

	unpublished := false
	_, _ = s.Create(models.GalleryCreate{Title: "Garden", Slug: "garden"})
	_, _ = s.Create(models.GalleryCreate{Title: "Hidden", Slug: "hidden", Published: &unpublished})

	slugs, err := s.PublishedSlugs()
	if err != nil {
		t.Fatalf("slugs: %v", err)
	}
	if len(slugs) != 1 || slugs[0] != "garden" {
		t.Fatalf("expected only published slugs, got %v", slugs)
	}
}

func TestSeedDemo(t *testing.T) {
	db := setupTestDB(t)
	s := NewGalleryService(db)

	created, err := s.SeedDemo(3)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 demo galleries, got %d", len(created))
	}

	total, err := s.Count()
	if err != nil || total != 3 {
		t.Fatalf("expected count 3, got %d (err=%v)", total, err)
	}

	for _, g := range created {
		if !strings.HasSuffix(g.Title, "(demo)") {
			t.Fatalf("expected demo marker in title, got %q", g.Title)
		}
		if len(g.Items) != 2 {
			t.Fatalf("expected 2 demo items, got %d", len(g.Items))
		}
	}

	// Re-seeding must not collide on slugs.
	if _, err := s.SeedDemo(3); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
}

func TestSeedDemo_CountClamped(t *testing.T) {
	db := setupTestDB(t)
	s := NewGalleryService(db)

	created, err := s.SeedDemo(0)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected clamp to 1, got %d", len(created))
	}
}

package service

import (
	"beforeafter/core"
	"beforeafter/models"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryService handles gallery business logic
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService constructs a gallery service
func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

// List lists all galleries without their items
func (s *GalleryService) List() ([]models.Gallery, error) {
	var galleries []models.Gallery
	if err := s.db.Order("created_at desc").Find(&galleries).Error; err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	return galleries, nil
}

// Get fetches a gallery with its items
func (s *GalleryService) Get(id string) (*models.Gallery, error) {
	var gallery models.Gallery
	if err := s.db.Preload("Items").First(&gallery, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("gallery not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return &gallery, nil
}

// Create creates a new gallery
func (s *GalleryService) Create(req models.GalleryCreate) (*models.Gallery, error) {
	req.Normalize()

	if req.Title == "" {
		return nil, fmt.Errorf("gallery title is required")
	}

	slug := core.SanitizeSlug(req.Slug, "")
	if slug == "" {
		slug = core.SanitizeSlug(req.Title, "")
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from %q", req.Title)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	gallery := models.Gallery{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Slug:      slug,
		Mode:      req.Mode,
		Published: published,
	}
	if gallery.Mode == "" {
		gallery.Mode = models.OptionDefaults[models.OptDefaultMode]
	}

	if err := s.db.Create(&gallery).Error; err != nil {
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}
	return &gallery, nil
}

// Count returns the number of galleries
func (s *GalleryService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Gallery{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count galleries: %w", err)
	}
	return total, nil
}

// PublishedSlugs returns the slugs of all published galleries, for the
// rewrite rule table.
func (s *GalleryService) PublishedSlugs() ([]string, error) {
	var slugs []string
	if err := s.db.Model(&models.Gallery{}).
		Where("published = ?", true).
		Order("slug").
		Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("failed to list published slugs: %w", err)
	}
	return slugs, nil
}

// SeedDemo creates sample galleries with placeholder image pairs. Slugs carry
// a random suffix so repeated seeding never collides.
func (s *GalleryService) SeedDemo(count int) ([]models.Gallery, error) {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}

	titles := []string{"Kitchen Remodel", "Garden Makeover", "Facade Restoration", "Bathroom Refresh", "Office Fit-Out"}

	created := make([]models.Gallery, 0, count)
	for i := 0; i < count; i++ {
		title := titles[i%len(titles)]
		suffix := uuid.NewString()[:8]

		gallery := models.Gallery{
			ID:        uuid.NewString(),
			Title:     fmt.Sprintf("%s (demo)", title),
			Slug:      fmt.Sprintf("%s-%s", core.SanitizeSlug(title, "demo"), suffix),
			Mode:      models.OptionDefaults[models.OptDefaultMode],
			Published: true,
			Items: []models.GalleryItem{
				{BeforeURL: fmt.Sprintf("/media/demo/%s-before.jpg", suffix), AfterURL: fmt.Sprintf("/media/demo/%s-after.jpg", suffix), Caption: "Demo pair", Position: 0},
				{BeforeURL: fmt.Sprintf("/media/demo/%s-before-2.jpg", suffix), AfterURL: fmt.Sprintf("/media/demo/%s-after-2.jpg", suffix), Caption: "Second demo pair", Position: 1},
			},
		}

		if err := s.db.Create(&gallery).Error; err != nil {
			return created, fmt.Errorf("failed to seed demo gallery: %w", err)
		}
		created = append(created, gallery)
	}

	return created, nil
}

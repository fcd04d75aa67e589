package models

import (
	"strings"
	"time"
)

// Gallery is a before/after image gallery. Only the fields the admin backend
// needs are modeled; image pairs live in Items.
type Gallery struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Mode      string    `gorm:"default:'slider'" json:"mode"`
	Published bool      `gorm:"default:true" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []GalleryItem `gorm:"foreignKey:GalleryID" json:"items,omitempty"`
}

// GalleryItem is one before/after image pair inside a gallery.
type GalleryItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	GalleryID string `gorm:"index;not null" json:"gallery_id"`
	BeforeURL string `json:"before_url"`
	AfterURL  string `json:"after_url"`
	Caption   string `json:"caption"`
	Position  int    `gorm:"default:0" json:"position"`
}

// GalleryCreate request payload for creating a gallery
type GalleryCreate struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Mode      string `json:"mode"`
	Published *bool  `json:"published"`
}

// Normalize trims whitespace from input fields
func (g *GalleryCreate) Normalize() {
	g.Title = strings.TrimSpace(g.Title)
	g.Slug = strings.TrimSpace(g.Slug)
	g.Mode = strings.TrimSpace(g.Mode)
}

// server/internal/models/product.go
package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories.
const (
	CategoryPlanting   = "Planting"
	CategoryProcessing = "Processing"
	CategoryOther      = "Other"
)

// Product represents a piece of agricultural machinery or equipment shown on
// the website. Writes are admin-only; reads are public.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Category       string             `bson:"category" json:"category"` // "Planting", "Processing", "Other"
	Tagline        string             `bson:"tagline" json:"tagline"`
	Description    string             `bson:"description,omitempty" json:"description"`
	Features       []string           `bson:"features" json:"features"`
	Specifications []Specification    `bson:"specifications" json:"specifications"`
	Price          string             `bson:"price" json:"price"`
	Image          string             `bson:"image,omitempty" json:"image"`
	Images         []string           `bson:"images" json:"images"`
	InStock        bool               `bson:"inStock" json:"inStock"`
	StockQuantity  int                `bson:"stockQuantity" json:"stockQuantity"`
	Slug           string             `bson:"slug" json:"slug"` // unique, derived from Name
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe identifier for a product name: lowercase,
// runs of non-alphanumeric characters collapsed to single hyphens, no
// leading or trailing hyphen.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

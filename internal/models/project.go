// server/internal/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectStatusCurrent   = "Current"
	ProjectStatusCompleted = "Completed"
	ProjectStatusUpcoming  = "Upcoming"
)

// Project represents a SAE TIFAN competition entry or other team project.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Year         string             `bson:"year" json:"year"`
	Status       string             `bson:"status" json:"status"` // "Current", "Completed", "Upcoming"
	Description  string             `bson:"description" json:"description"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	Images       []string           `bson:"images" json:"images"`
	Competition  string             `bson:"competition,omitempty" json:"competition"`
	Location     string             `bson:"location,omitempty" json:"location"`
	Features     []string           `bson:"features" json:"features"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Captain      string             `bson:"captain,omitempty" json:"captain"`
	ViceCaptain  string             `bson:"viceCaptain,omitempty" json:"viceCaptain"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// server/internal/models/contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Contact stores one contact form submission. RepliedAt is set exactly once,
// when the status first transitions to "replied".
type Contact struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone"`
	Subject      string             `bson:"subject" json:"subject"`
	Message      string             `bson:"message" json:"message"`
	Status       string             `bson:"status" json:"status"` // "new", "read", "replied", "archived"
	RepliedAt    *time.Time         `bson:"repliedAt,omitempty" json:"repliedAt,omitempty"`
	ReplyMessage string             `bson:"replyMessage,omitempty" json:"replyMessage,omitempty"`
	IPAddress    string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

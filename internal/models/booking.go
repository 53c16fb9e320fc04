// server/internal/models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking types.
const (
	BookingTypeEngineer       = "engineer"
	BookingTypeProductEnquiry = "product_enquiry"
	BookingTypeConsultation   = "consultation"
	BookingTypeOther          = "other"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking stores an engineer booking request or product enquiry. ProductID is
// a soft reference: it is never validated against the products collection and
// may dangle after a product is deleted.
type Booking struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Email         string              `bson:"email" json:"email"`
	Phone         string              `bson:"phone" json:"phone"`
	Organization  string              `bson:"organization,omitempty" json:"organization"`
	Type          string              `bson:"type" json:"type"` // "engineer", "product_enquiry", "consultation", "other"
	Department    string              `bson:"department,omitempty" json:"department"`
	PreferredDate *time.Time          `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"`
	TimeSlot      string              `bson:"timeSlot,omitempty" json:"timeSlot"`
	Purpose       string              `bson:"purpose" json:"purpose"`
	ProductID     *primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName   string              `bson:"productName,omitempty" json:"productName"`
	Status        string              `bson:"status" json:"status"` // "pending", "confirmed", "completed", "cancelled"
	AdminNotes    string              `bson:"adminNotes,omitempty" json:"adminNotes"`
	ConfirmedAt   *time.Time          `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	ConfirmedBy   string              `bson:"confirmedBy,omitempty" json:"confirmedBy"`
	IPAddress     string              `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// server/internal/api/handlers/booking_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"sanjivani-agritech-api-server/internal/api/middleware"
	"sanjivani-agritech-api-server/internal/models"
	"sanjivani-agritech-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type SubmitBookingRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=100,letterspace"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,min=10,max=15,phonefmt"`
	Organization  string `json:"organization" binding:"omitempty,max=200"`
	Type          string `json:"type" binding:"required,oneof=engineer product_enquiry consultation other"`
	Department    string `json:"department" binding:"omitempty,max=100"`
	PreferredDate string `json:"preferredDate" binding:"omitempty,notpastdate"`
	TimeSlot      string `json:"timeSlot" binding:"omitempty,max=50"`
	Purpose       string `json:"purpose" binding:"required,min=10,max=1000"`
	ProductID     string `json:"productId" binding:"omitempty,len=24,hexadecimal"`
	ProductName   string `json:"productName" binding:"omitempty,max=200"`
}

type UpdateBookingRequest struct {
	Status     *string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	AdminNotes *string `json:"adminNotes" binding:"omitempty,max=1000"`
	TimeSlot   *string `json:"timeSlot" binding:"omitempty,max=50"`
}

// SubmitBooking stores a booking request or product enquiry. Public
// endpoint; the caller's IP is recorded. The product reference is stored
// as-is and never checked against the products collection.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	now := time.Now()
	booking := models.Booking{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Type:         req.Type,
		Department:   req.Department,
		TimeSlot:     req.TimeSlot,
		Purpose:      req.Purpose,
		ProductName:  req.ProductName,
		Status:       models.BookingStatusPending,
		IPAddress:    c.ClientIP(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if req.PreferredDate != "" {
		date, err := middleware.ParseDate(req.PreferredDate)
		if err == nil {
			booking.PreferredDate = &date
		}
	}

	if req.ProductID != "" {
		if oid, err := primitive.ObjectIDFromHex(req.ProductID); err == nil {
			booking.ProductID = &oid
		}
	}

	result, err := h.DB.Collection("bookings").InsertOne(context.Background(), booking)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to submit booking")
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	if h.Hub != nil {
		h.Hub.Broadcast("booking.created", gin.H{
			"id":   booking.ID.Hex(),
			"name": booking.Name,
			"type": booking.Type,
		})
	}

	respondCreated(c, booking, "Booking request submitted successfully! We will confirm your appointment soon.")
}

// ListBookings returns bookings, newest first, optionally filtered by status
// and type.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}
	collection := h.DB.Collection("bookings")

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if bookingType := c.Query("type"); bookingType != "" {
		filter["type"] = bookingType
	}

	page, limit := parsePagination(c)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to query bookings")
		return
	}
	defer cursor.Close(context.Background())

	var bookings []models.Booking
	if err = cursor.All(context.Background(), &bookings); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to decode bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count bookings")
		return
	}

	respondList(c, bookings, buildPagination(page, limit, total))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var booking models.Booking
	err := h.DB.Collection("bookings").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Booking")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve booking")
		}
		return
	}

	respondOK(c, booking)
}

// bookingUpdateSet builds the $set for an admin update. The first transition
// to "confirmed" stamps confirmedAt and records the confirming admin; once
// set, neither is written again.
func bookingUpdateSet(existing models.Booking, req UpdateBookingRequest, adminID string, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if req.Status != nil {
		set["status"] = *req.Status
		if *req.Status == models.BookingStatusConfirmed && existing.ConfirmedAt == nil {
			set["confirmedAt"] = now
			set["confirmedBy"] = adminID
		}
	}
	if req.AdminNotes != nil {
		set["adminNotes"] = *req.AdminNotes
	}
	if req.TimeSlot != nil {
		set["timeSlot"] = *req.TimeSlot
	}
	return set
}

// UpdateBooking changes booking status and admin notes. Concurrent admin
// updates race benignly (last write wins).
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	collection := h.DB.Collection("bookings")

	var existing models.Booking
	err := collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Booking")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve booking")
		}
		return
	}

	var updated models.Booking
	err = collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bookingUpdateSet(existing, req, c.GetString(middleware.ContextUserID), time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Booking")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	respondUpdated(c, updated, "Booking updated successfully")
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.DB.Collection("bookings").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Booking")
		return
	}

	respondMessage(c, "Booking deleted successfully")
}

func (h *BookingHandler) objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Booking")
		return primitive.NilObjectID, false
	}
	return oid, true
}

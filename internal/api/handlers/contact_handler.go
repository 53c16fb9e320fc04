// server/internal/api/handlers/contact_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"sanjivani-agritech-api-server/internal/models"
	"sanjivani-agritech-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100,letterspace"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,min=10,max=15,phonefmt"`
	Subject string `json:"subject" binding:"required,min=5,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

type UpdateContactRequest struct {
	Status       *string `json:"status" binding:"omitempty,oneof=new read replied archived"`
	ReplyMessage *string `json:"replyMessage" binding:"omitempty,max=5000"`
}

// SubmitContact stores a contact form submission. Public endpoint; the
// caller's IP is recorded for spam triage.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	now := time.Now()
	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
		IPAddress: c.ClientIP(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := h.DB.Collection("contacts").InsertOne(context.Background(), contact)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}

	if h.Hub != nil {
		h.Hub.Broadcast("contact.created", gin.H{
			"id":      contact.ID.Hex(),
			"name":    contact.Name,
			"subject": contact.Subject,
		})
	}

	respondCreated(c, contact, "Message sent successfully! We will get back to you soon.")
}

// ListContacts returns contact messages, newest first, optionally filtered
// by status.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}
	collection := h.DB.Collection("contacts")

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	page, limit := parsePagination(c)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to query messages")
		return
	}
	defer cursor.Close(context.Background())

	var contacts []models.Contact
	if err = cursor.All(context.Background(), &contacts); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to decode messages")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count messages")
		return
	}

	respondList(c, contacts, buildPagination(page, limit, total))
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var contact models.Contact
	err := h.DB.Collection("contacts").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Message")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve message")
		}
		return
	}

	respondOK(c, contact)
}

// contactUpdateSet builds the $set for an admin triage change. The first
// transition to "replied" stamps repliedAt; once set, the timestamp is
// never written again.
func contactUpdateSet(existing models.Contact, req UpdateContactRequest, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if req.Status != nil {
		set["status"] = *req.Status
		if *req.Status == models.ContactStatusReplied && existing.RepliedAt == nil {
			set["repliedAt"] = now
		}
	}
	if req.ReplyMessage != nil {
		set["replyMessage"] = *req.ReplyMessage
	}
	return set
}

// UpdateContact changes the triage status of a message. Concurrent admin
// updates race benignly (last write wins).
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	collection := h.DB.Collection("contacts")

	var existing models.Contact
	err := collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Message")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve message")
		}
		return
	}

	var updated models.Contact
	err = collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": contactUpdateSet(existing, req, time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Message")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update message")
		}
		return
	}

	respondUpdated(c, updated, "Message updated successfully")
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.DB.Collection("contacts").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Message")
		return
	}

	respondMessage(c, "Message deleted successfully")
}

func (h *ContactHandler) objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Message")
		return primitive.NilObjectID, false
	}
	return oid, true
}

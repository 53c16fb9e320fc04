// server/internal/api/handlers/team_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"sanjivani-agritech-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TeamHandler struct {
	DB *mongo.Database
}

type CreateTeamMemberRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Role         string `json:"role" binding:"required,max=100"`
	Type         string `json:"type" binding:"required,oneof=Faculty Mentor Lead Member"`
	Department   string `json:"department" binding:"omitempty,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin" binding:"omitempty,startswith=http"`
	Photo        string `json:"photo"`
	Bio          string `json:"bio" binding:"omitempty,max=1000"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

type UpdateTeamMemberRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Role         *string `json:"role" binding:"omitempty,max=100"`
	Type         *string `json:"type" binding:"omitempty,oneof=Faculty Mentor Lead Member"`
	Department   *string `json:"department" binding:"omitempty,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin" binding:"omitempty,startswith=http"`
	Photo        *string `json:"photo"`
	Bio          *string `json:"bio" binding:"omitempty,max=1000"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// ListTeamMembers returns team members sorted for display. Inactive members
// are hidden unless isActive=false is requested explicitly.
func (h *TeamHandler) ListTeamMembers(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}
	collection := h.DB.Collection("team_members")

	filter := bson.M{"isActive": c.DefaultQuery("isActive", "true") == "true"}
	if memberType := c.Query("type"); memberType != "" {
		filter["type"] = memberType
	}

	page, limit := parsePagination(c)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to query team members")
		return
	}
	defer cursor.Close(context.Background())

	var members []models.TeamMember
	if err = cursor.All(context.Background(), &members); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to decode team members")
		return
	}
	if members == nil {
		members = []models.TeamMember{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count team members")
		return
	}

	respondList(c, members, buildPagination(page, limit, total))
}

func (h *TeamHandler) GetTeamMember(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var member models.TeamMember
	err := h.DB.Collection("team_members").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Team member")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve team member")
		}
		return
	}

	respondOK(c, member)
}

func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	now := time.Now()
	member := models.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		Type:         req.Type,
		Department:   req.Department,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		Photo:        req.Photo,
		Bio:          req.Bio,
		DisplayOrder: 999,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	result, err := h.DB.Collection("team_members").InsertOne(context.Background(), member)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}

	respondCreated(c, member, "Team member created successfully")
}

func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.LinkedIn != nil {
		set["linkedin"] = *req.LinkedIn
	}
	if req.Photo != nil {
		set["photo"] = *req.Photo
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.DisplayOrder != nil {
		set["displayOrder"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	var updated models.TeamMember
	err := h.DB.Collection("team_members").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Team member")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update team member")
		}
		return
	}

	respondUpdated(c, updated, "Team member updated successfully")
}

func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.DB.Collection("team_members").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Team member")
		return
	}

	respondMessage(c, "Team member deleted successfully")
}

func (h *TeamHandler) objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Team member")
		return primitive.NilObjectID, false
	}
	return oid, true
}

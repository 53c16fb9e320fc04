// server/internal/api/handlers/project_handler.go
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

type ProjectHandler struct {
	DB *mongo.Database
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Year         string   `json:"year" binding:"required"`
	Status       string   `json:"status" binding:"required,oneof=Current Completed Upcoming"`
	Description  string   `json:"description" binding:"required,max=2000"`
	Achievements []string `json:"achievements"`
	Images       []string `json:"images"`
	Competition  string   `json:"competition" binding:"omitempty,max=200"`
	Location     string   `json:"location"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Captain      string   `json:"captain"`
	ViceCaptain  string   `json:"viceCaptain"`
	DisplayOrder *int     `json:"displayOrder"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=200"`
	Year         *string   `json:"year"`
	Status       *string   `json:"status" binding:"omitempty,oneof=Current Completed Upcoming"`
	Description  *string   `json:"description" binding:"omitempty,max=2000"`
	Achievements *[]string `json:"achievements"`
	Images       *[]string `json:"images"`
	Competition  *string   `json:"competition" binding:"omitempty,max=200"`
	Location     *string   `json:"location"`
	Features     *[]string `json:"features"`
	Technologies *[]string `json:"technologies"`
	Captain      *string   `json:"captain"`
	ViceCaptain  *string   `json:"viceCaptain"`
	DisplayOrder *int      `json:"displayOrder"`
}

// ListProjects returns projects ordered for the projects page: explicit
// display order first, then newest year, then newest record.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}
	collection := h.DB.Collection("projects")

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if year := c.Query("year"); year != "" {
		filter["year"] = year
	}

	page, limit := parsePagination(c)

	findOpts := options.Find().
		SetSort(bson.D{
			{Key: "displayOrder", Value: -1},
			{Key: "year", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to query projects")
		return
	}
	defer cursor.Close(context.Background())

	var projects []models.Project
	if err = cursor.All(context.Background(), &projects); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to decode projects")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count projects")
		return
	}

	respondList(c, projects, buildPagination(page, limit, total))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var project models.Project
	err := h.DB.Collection("projects").FindOne(context.Background(), bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Project")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve project")
		}
		return
	}

	respondOK(c, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	now := time.Now()
	project := models.Project{
		Title:        req.Title,
		Year:         req.Year,
		Status:       req.Status,
		Description:  req.Description,
		Achievements: emptyIfNil(req.Achievements),
		Images:       emptyIfNil(req.Images),
		Competition:  req.Competition,
		Location:     req.Location,
		Features:     emptyIfNil(req.Features),
		Technologies: emptyIfNil(req.Technologies),
		Captain:      req.Captain,
		ViceCaptain:  req.ViceCaptain,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.DisplayOrder != nil {
		project.DisplayOrder = *req.DisplayOrder
	}

	result, err := h.DB.Collection("projects").InsertOne(context.Background(), project)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		project.ID = oid
	}

	respondCreated(c, project, "Project created successfully")
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Year != nil {
		set["year"] = *req.Year
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Achievements != nil {
		set["achievements"] = *req.Achievements
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.Competition != nil {
		set["competition"] = *req.Competition
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Features != nil {
		set["features"] = *req.Features
	}
	if req.Technologies != nil {
		set["technologies"] = *req.Technologies
	}
	if req.Captain != nil {
		set["captain"] = *req.Captain
	}
	if req.ViceCaptain != nil {
		set["viceCaptain"] = *req.ViceCaptain
	}
	if req.DisplayOrder != nil {
		set["displayOrder"] = *req.DisplayOrder
	}

	var updated models.Project
	err := h.DB.Collection("projects").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Project")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to update project")
		}
		return
	}

	respondUpdated(c, updated, "Project updated successfully")
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.DB.Collection("projects").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Project")
		return
	}

	respondMessage(c, "Project deleted successfully")
}

func (h *ProjectHandler) objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Project")
		return primitive.NilObjectID, false
	}
	return oid, true
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

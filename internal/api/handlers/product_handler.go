// server/internal/api/handlers/product_handler.go
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

type ProductHandler struct {
	DB *mongo.Database
}

type SpecificationRequest struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type CreateProductRequest struct {
	Name           string                 `json:"name" binding:"required,max=200"`
	Category       string                 `json:"category" binding:"required,oneof=Planting Processing Other"`
	Tagline        string                 `json:"tagline" binding:"required,max=500"`
	Description    string                 `json:"description" binding:"omitempty,max=2000"`
	Features       []string               `json:"features" binding:"required,min=1,dive,required"`
	Specifications []SpecificationRequest `json:"specifications" binding:"omitempty,dive"`
	Price          string                 `json:"price" binding:"required"`
	Image          string                 `json:"image"`
	Images         []string               `json:"images"`
	InStock        *bool                  `json:"inStock"`
	StockQuantity  *int                   `json:"stockQuantity" binding:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name           *string                 `json:"name" binding:"omitempty,max=200"`
	Category       *string                 `json:"category" binding:"omitempty,oneof=Planting Processing Other"`
	Tagline        *string                 `json:"tagline" binding:"omitempty,max=500"`
	Description    *string                 `json:"description" binding:"omitempty,max=2000"`
	Features       *[]string               `json:"features" binding:"omitempty,min=1,dive,required"`
	Specifications *[]SpecificationRequest `json:"specifications" binding:"omitempty,dive"`
	Price          *string                 `json:"price"`
	Image          *string                 `json:"image"`
	Images         *[]string               `json:"images"`
	InStock        *bool                   `json:"inStock"`
	StockQuantity  *int                    `json:"stockQuantity" binding:"omitempty,gte=0"`
}

// buildProductFilter translates list query params into a Mongo filter.
// Unknown or malformed values are ignored rather than erroring.
func buildProductFilter(category, inStock, search string) bson.M {
	filter := bson.M{}

	if category != "" && category != "All" {
		filter["category"] = category
	}

	switch inStock {
	case "true":
		filter["inStock"] = true
	case "false":
		filter["inStock"] = false
	}

	if search != "" {
		filter["$text"] = bson.M{"$search": search}
	}

	return filter
}

// productSort picks text-score ordering for searches, newest-first otherwise.
func productSort(search string) bson.D {
	if search != "" {
		return bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

// ListProducts returns a page of products with optional category, stock and
// full-text filters.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}
	collection := h.DB.Collection("products")

	search := c.Query("search")
	filter := buildProductFilter(c.Query("category"), c.Query("inStock"), search)
	page, limit := parsePagination(c)

	findOpts := options.Find().
		SetSort(productSort(search)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	if search != "" {
		findOpts.SetProjection(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})
	}

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to query products")
		return
	}
	defer cursor.Close(context.Background())

	var products []models.Product
	if err = cursor.All(context.Background(), &products); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to decode products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to count products")
		return
	}

	respondList(c, products, buildPagination(page, limit, total))
}

// productLookupFilter matches a 24-hex ObjectID against _id; any other
// shape is treated as a slug.
func productLookupFilter(idOrSlug string) bson.M {
	if isObjectIDHex(idOrSlug) {
		if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
			return bson.M{"_id": oid}
		}
	}
	return bson.M{"slug": idOrSlug}
}

// GetProduct resolves a product by 24-hex ObjectID or, failing that shape,
// by slug.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var product models.Product
	err := h.DB.Collection("products").FindOne(context.Background(), productLookupFilter(c.Param("id"))).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Product")
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to retrieve product")
		}
		return
	}

	respondOK(c, product)
}

// CreateProduct persists a new product; the slug is derived from the name.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	now := time.Now()
	product := models.Product{
		Name:           req.Name,
		Category:       req.Category,
		Tagline:        req.Tagline,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: specsFromRequest(req.Specifications),
		Price:          req.Price,
		Image:          req.Image,
		Images:         req.Images,
		InStock:        true,
		Slug:           models.Slugify(req.Name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	result, err := h.DB.Collection("products").InsertOne(context.Background(), product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "Product with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	respondCreated(c, product, "Product created successfully")
}

// UpdateProduct merges the submitted fields into the stored document. A name
// change regenerates the slug; omitting the name leaves the slug untouched.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
		set["slug"] = models.Slugify(*req.Name)
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Tagline != nil {
		set["tagline"] = *req.Tagline
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Features != nil {
		set["features"] = *req.Features
	}
	if req.Specifications != nil {
		set["specifications"] = specsFromRequest(*req.Specifications)
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.InStock != nil {
		set["inStock"] = *req.InStock
	}
	if req.StockQuantity != nil {
		set["stockQuantity"] = *req.StockQuantity
	}

	var updated models.Product
	err := h.DB.Collection("products").FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Product")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "Product with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	respondUpdated(c, updated, "Product updated successfully")
}

// DeleteProduct hard-deletes a product. Bookings referencing it keep their
// dangling productId.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if !requireDB(c, h.DB) {
		return
	}

	oid, ok := h.objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.DB.Collection("products").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Product")
		return
	}

	respondMessage(c, "Product deleted successfully")
}

func (h *ProductHandler) objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondNotFound(c, "Product")
		return primitive.NilObjectID, false
	}
	return oid, true
}

func specsFromRequest(specs []SpecificationRequest) []models.Specification {
	out := make([]models.Specification, 0, len(specs))
	for _, s := range specs {
		out = append(out, models.Specification{Label: s.Label, Value: s.Value})
	}
	return out
}

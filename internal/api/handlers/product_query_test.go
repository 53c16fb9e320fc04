package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		inStock  string
		search   string
		want     bson.M
	}{
		{
			name: "no filters",
			want: bson.M{},
		},
		{
			name:     "category filter",
			category: "Planting",
			want:     bson.M{"category": "Planting"},
		},
		{
			name:     "category All is ignored",
			category: "All",
			want:     bson.M{},
		},
		{
			name:    "inStock true",
			inStock: "true",
			want:    bson.M{"inStock": true},
		},
		{
			name:    "inStock false",
			inStock: "false",
			want:    bson.M{"inStock": false},
		},
		{
			name:    "malformed inStock ignored",
			inStock: "banana",
			want:    bson.M{},
		},
		{
			name:   "text search",
			search: "planter",
			want:   bson.M{"$text": bson.M{"$search": "planter"}},
		},
		{
			name:     "combined",
			category: "Processing",
			inStock:  "true",
			search:   "mill",
			want: bson.M{
				"category": "Processing",
				"inStock":  true,
				"$text":    bson.M{"$search": "mill"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildProductFilter(tt.category, tt.inStock, tt.search))
		})
	}
}

func TestProductLookupFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	// a 24-hex id resolves against _id, anything else against the slug
	assert.Equal(t, bson.M{"_id": oid}, productLookupFilter(oid.Hex()))
	assert.Equal(t, bson.M{"slug": "seed-planter-3000"}, productLookupFilter("seed-planter-3000"))

	// 23 hex chars is not an ObjectID and falls through to slug lookup
	assert.Equal(t, bson.M{"slug": "64a1f0c2e4b0a1b2c3d4e5f"}, productLookupFilter("64a1f0c2e4b0a1b2c3d4e5f"))
}

func TestProductSort(t *testing.T) {
	// searches order by text score, plain lists newest-first
	assert.Equal(t,
		bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}},
		productSort("harvester"))
	assert.Equal(t,
		bson.D{{Key: "createdAt", Value: -1}},
		productSort(""))
}

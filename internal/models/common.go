// server/internal/models/common.go
package models

// Specification is a label/value pair describing one technical spec of a product.
type Specification struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}

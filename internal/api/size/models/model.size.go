// Package models - Size thuộc domain size.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size dung lượng / phiên bản bộ nhớ của máy (64GB, 128GB, 1TB...).
// Code unique trong phạm vi một shop.
type Size struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop      primitive.ObjectID `json:"shop" bson:"shop" index:"single;compound:shop_code_unique"`
	Name      string             `json:"name" bson:"name"`
	Code      string             `json:"code" bson:"code" index:"compound:shop_code_unique"`
	Describe  string             `json:"describe" bson:"describe"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

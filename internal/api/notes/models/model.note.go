// Package models - Note thuộc domain notes.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note ghi chú nội bộ của cửa hàng.
type Note struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop      primitive.ObjectID `json:"shop" bson:"shop" index:"single"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Pinned    bool               `json:"pinned" bson:"pinned"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

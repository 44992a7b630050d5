// Package models - Problem thuộc domain problem.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Problem danh mục lỗi máy (màn hình, pin, nguồn...), dùng chung cho mọi shop.
// Các bản ghi seed sẵn mang IsSystem = true và không được sửa hay xóa qua API.
type Problem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Describe  string             `json:"describe" bson:"describe"`
	IsSystem  bool               `json:"isSystem" bson:"isSystem" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

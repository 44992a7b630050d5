// Package models - Shop thuộc domain shop.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop cửa hàng, là đơn vị tenant của toàn hệ thống.
// Slug unique toàn cục, dùng làm định danh ngắn trên URL của frontend.
// Không xóa được shop khi vẫn còn dữ liệu thuộc về nó.
type Shop struct {
	_Relationships struct{}           `relationship:"collection:products,field:shop,message:Cannot delete shop: %d product(s) still belong to it|collection:vendors,field:shop,message:Cannot delete shop: %d vendor(s) still belong to it|collection:vendor_transactions,field:shop,optional:true"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug" index:"unique"`
	Address        string             `json:"address" bson:"address"`
	Phone          string             `json:"phone" bson:"phone"`
	Active         bool               `json:"active" bson:"active" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

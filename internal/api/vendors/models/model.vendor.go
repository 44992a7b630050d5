// Package models - Vendor thuộc domain vendor.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor nhà cung cấp hàng cho cửa hàng. Code unique trong phạm vi shop.
// Không xóa được vendor khi vẫn còn giao dịch tham chiếu tới nó.
type Vendor struct {
	_Relationships struct{}           `relationship:"collection:vendor_transactions,field:vendor,message:Cannot delete vendor: %d transaction(s) still reference it"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop           primitive.ObjectID `json:"shop" bson:"shop" index:"single;compound:shop_code_unique"`
	Name           string             `json:"name" bson:"name"`
	Code           string             `json:"code" bson:"code" index:"compound:shop_code_unique"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address" bson:"address"`
	Note           string             `json:"note" bson:"note"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

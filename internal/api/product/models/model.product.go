// Package models - Product thuộc domain product.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product sản phẩm tồn kho của cửa hàng. Code unique trong phạm vi shop.
// Category được chuẩn hóa khoảng trắng khi ghi để dashboard match đúng
// các nhãn chuẩn ("NEW PHONE", "2HAND", "ACCESSORIES").
type Product struct {
	_Relationships struct{}           `relationship:"collection:product_logs,field:product,optional:true"`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop           primitive.ObjectID `json:"shop" bson:"shop" index:"single;compound:shop_code_unique"`
	Name           string             `json:"name" bson:"name"`
	Code           string             `json:"code" bson:"code" index:"compound:shop_code_unique"`
	IMEI           string             `json:"imei" bson:"imei" index:"single"`
	Category       string             `json:"category" bson:"category" index:"single"`
	Quantity       int64              `json:"quantity" bson:"quantity"`
	PurchasePrice  float64            `json:"purchasePrice" bson:"purchasePrice"`
	SalePrice      float64            `json:"salePrice" bson:"salePrice"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - ProductLog thuộc domain productlog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductLog nhật ký xuất nhập của một sản phẩm (nhập kho, bán, điều chỉnh...).
// Xóa nhật ký không xóa hẳn: document được chuyển sang collection
// product_log_archive và có thể khôi phục lại, giữ nguyên _id hai chiều.
type ProductLog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop        primitive.ObjectID `json:"shop" bson:"shop" index:"single"`
	Product     primitive.ObjectID `json:"product,omitempty" bson:"product,omitempty" index:"single"`
	ProductName string             `json:"productName" bson:"productName"`
	IMEI        string             `json:"imei" bson:"imei"`
	Action      string             `json:"action" bson:"action" default:"import"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	Price       float64            `json:"price" bson:"price"`
	Note        string             `json:"note" bson:"note"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single;order:-1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - VendorTransaction thuộc domain transactions.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorTransaction giao dịch công nợ với nhà cung cấp.
// Type: "payment" trả tiền cho vendor, "debt" nhận hàng ghi nợ.
// DateString/Month/Year được service tính từ Date khi tạo giao dịch.
type VendorTransaction struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop       primitive.ObjectID `json:"shop" bson:"shop" index:"single"`
	Vendor     primitive.ObjectID `json:"vendor" bson:"vendor" index:"single"`
	Reference  string             `json:"reference" bson:"reference"`
	Note       string             `json:"note" bson:"note"`
	Type       string             `json:"type" bson:"type" default:"payment"`
	Amount     float64            `json:"amount" bson:"amount"`
	Date       int64              `json:"date" bson:"date" index:"single;order:-1"`
	DateString string             `json:"dateString" bson:"dateString"`
	Month      int                `json:"month" bson:"month"`
	Year       int                `json:"year" bson:"year"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

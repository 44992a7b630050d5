// Package models - Payout thuộc domain payout.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payout phiếu chi của cửa hàng. Code là mã phiếu, unique trong phạm vi shop.
// DateString/Month/Year được service tính từ Date khi tạo phiếu.
type Payout struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop       primitive.ObjectID `json:"shop" bson:"shop" index:"single;compound:shop_code_unique"`
	Code       string             `json:"code" bson:"code" index:"compound:shop_code_unique"`
	Reason     string             `json:"reason" bson:"reason"`
	Amount     float64            `json:"amount" bson:"amount"`
	Receiver   string             `json:"receiver" bson:"receiver"`
	Date       int64              `json:"date" bson:"date" index:"single;order:-1"`
	DateString string             `json:"dateString" bson:"dateString"`
	Month      int                `json:"month" bson:"month"`
	Year       int                `json:"year" bson:"year"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package models - Repair thuộc domain repair.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repair phiếu sửa chữa máy cho khách.
// DateString/Month/Year được service tính từ Date khi tạo phiếu.
type Repair struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Shop         primitive.ObjectID `json:"shop" bson:"shop" index:"single"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Phone        string             `json:"phone" bson:"phone"`
	IMEI         string             `json:"imei" bson:"imei"`
	ProductName  string             `json:"productName" bson:"productName"`
	Issue        string             `json:"issue" bson:"issue"`
	Cost         float64            `json:"cost" bson:"cost"`
	Status       string             `json:"status" bson:"status" default:"received"`
	Date         int64              `json:"date" bson:"date" index:"single;order:-1"`
	DateString   string             `json:"dateString" bson:"dateString"`
	Month        int                `json:"month" bson:"month"`
	Year         int                `json:"year" bson:"year"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// Hook audit: ghi mọi thay đổi dữ liệu qua CRUD vào audit log.
package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"phone_commerce/internal/logger"
)

func init() {
	OnDataChanged(handleAuditDataChange)
}

// handleAuditDataChange ghi sự kiện thay đổi dữ liệu vào audit log.
// Document nil (delete) vẫn được ghi với shop_id rỗng.
func handleAuditDataChange(ctx context.Context, e DataChangeEvent) {
	fields := logrus.Fields{
		"action":        "crud_" + e.Operation,
		"resource_type": e.CollectionName,
	}

	if shopID := GetShopIDFromDocument(e.Document); !shopID.IsZero() {
		fields["shop_id"] = shopID.Hex()
	}
	if createdAt := GetInt64Field(e.Document, "CreatedAt"); createdAt > 0 {
		fields["created_at"] = createdAt
	}

	logger.GetAuditLogger().WithFields(fields).Info("Data changed")
}

// Package productlogsvc - service cho domain productlog.
//
// Khác với các domain khác, xóa nhật ký sản phẩm không xóa hẳn mà chuyển
// document sang collection product_log_archive (giữ nguyên _id), và có thể
// khôi phục lại bằng Restore. Hai bước chuyển không nằm trong transaction:
// lỗi giữa chừng có thể để document tồn tại ở cả hai collection, khi đó
// insert lần chuyển sau sẽ đụng duplicate _id và được dọn bằng lần xóa kế tiếp.
package productlogsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	"phone_commerce/internal/api/events"
	models "phone_commerce/internal/api/productlog/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductLogService là cấu trúc chứa các phương thức liên quan đến nhật ký sản phẩm
type ProductLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ProductLog]
	archive *mongo.Collection
}

// NewProductLogService tạo mới ProductLogService
func NewProductLogService() (*ProductLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get product_logs collection: %v", common.ErrNotFound)
	}
	archive, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductLogArchive)
	if !exist {
		return nil, fmt.Errorf("failed to get product_log_archive collection: %v", common.ErrNotFound)
	}

	service := &ProductLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ProductLog](collection),
		archive:              archive,
	}
	service.SetSearchFields("productName", "imei")
	service.SetFilterFields("product", "productName", "imei", "action", "quantity", "price", "note", "createdAt")
	return service, nil
}

// DeleteById chuyển nhật ký sang archive rồi xóa khỏi collection chính.
// Document trong archive giữ nguyên _id để restore trả về đúng bản ghi cũ.
func (s *ProductLogService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	doc, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.archive.InsertOne(ctx, doc); err != nil {
		return common.ConvertMongoError(err)
	}
	if _, err := s.Collection().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.Collection().Name(),
		Operation:      events.OpDelete,
		Document:       doc,
	})
	return nil
}

// DeleteManyByIds chuyển từng nhật ký sang archive.
// ID không tồn tại được bỏ qua và trả về trong danh sách skipped.
func (s *ProductLogService) DeleteManyByIds(ctx context.Context, ids []primitive.ObjectID) (int64, []primitive.ObjectID, error) {
	var deleted int64
	var skipped []primitive.ObjectID
	for _, id := range ids {
		if err := s.DeleteById(ctx, id); err != nil {
			var appErr *common.Error
			if errors.As(err, &appErr) && appErr.StatusCode < common.StatusInternalServerError {
				skipped = append(skipped, id)
				continue
			}
			return deleted, skipped, err
		}
		deleted++
	}
	return deleted, skipped, nil
}

// RestoreById chuyển một nhật ký từ archive về lại collection chính, giữ nguyên _id.
func (s *ProductLogService) RestoreById(ctx context.Context, id primitive.ObjectID) (models.ProductLog, error) {
	var doc models.ProductLog
	if err := s.archive.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return doc, common.ConvertMongoError(err)
	}

	if _, err := s.Collection().InsertOne(ctx, doc); err != nil {
		return doc, common.ConvertMongoError(err)
	}
	if _, err := s.archive.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return doc, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.Collection().Name(),
		Operation:      events.OpRestore,
		Document:       doc,
	})
	return doc, nil
}

// Package notessvc - service cho domain notes.
package notessvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/notes/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// NoteService là cấu trúc chứa các phương thức liên quan đến ghi chú
type NoteService struct {
	*basesvc.BaseServiceMongoImpl[models.Note]
}

// NewNoteService tạo mới NoteService
func NewNoteService() (*NoteService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notes)
	if !exist {
		return nil, fmt.Errorf("failed to get notes collection: %v", common.ErrNotFound)
	}

	service := &NoteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Note](collection),
	}
	service.SetSearchFields("title", "content")
	service.SetFilterFields("title", "content", "pinned", "createdAt")
	return service, nil
}

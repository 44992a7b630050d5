package noteshdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	notesdto "phone_commerce/internal/api/notes/dto"
	models "phone_commerce/internal/api/notes/models"
	notessvc "phone_commerce/internal/api/notes/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteHandler xử lý các route liên quan đến ghi chú
type NoteHandler struct {
	*basehdl.BaseHandler[models.Note, notesdto.NoteCreateInput, notesdto.NoteUpdateInput]
}

// NewNoteHandler tạo instance mới của NoteHandler
func NewNoteHandler() (*NoteHandler, error) {
	service, err := notessvc.NewNoteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create note service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Note, notesdto.NoteCreateInput, notesdto.NoteUpdateInput](service)
	base.ShopRequired = true
	base.BuildModel = func(input *notesdto.NoteCreateInput, shopID primitive.ObjectID) (models.Note, error) {
		return models.Note{
			Shop:    shopID,
			Title:   input.Title,
			Content: input.Content,
			Pinned:  input.Pinned,
		}, nil
	}
	return &NoteHandler{BaseHandler: base}, nil
}

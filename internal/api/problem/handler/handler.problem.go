package problemhdl

import (
	"fmt"

	basehdl "phone_commerce/internal/api/base/handler"
	problemdto "phone_commerce/internal/api/problem/dto"
	models "phone_commerce/internal/api/problem/models"
	problemsvc "phone_commerce/internal/api/problem/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProblemHandler xử lý các route liên quan đến danh mục lỗi máy
type ProblemHandler struct {
	*basehdl.BaseHandler[models.Problem, problemdto.ProblemCreateInput, problemdto.ProblemUpdateInput]
}

// NewProblemHandler tạo instance mới của ProblemHandler.
// Danh mục lỗi dùng chung cho mọi shop nên không yêu cầu shop ID.
func NewProblemHandler() (*ProblemHandler, error) {
	service, err := problemsvc.NewProblemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create problem service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Problem, problemdto.ProblemCreateInput, problemdto.ProblemUpdateInput](service)
	base.BuildModel = func(input *problemdto.ProblemCreateInput, _ primitive.ObjectID) (models.Problem, error) {
		return models.Problem{
			Name:     input.Name,
			Describe: input.Describe,
		}, nil
	}
	return &ProblemHandler{BaseHandler: base}, nil
}

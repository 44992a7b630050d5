// Package problemsvc - service cho domain problem.
package problemsvc

import (
	"fmt"

	basesvc "phone_commerce/internal/api/base/service"
	models "phone_commerce/internal/api/problem/models"
	"phone_commerce/internal/common"
	"phone_commerce/internal/global"
)

// ProblemService là cấu trúc chứa các phương thức liên quan đến danh mục lỗi máy
type ProblemService struct {
	*basesvc.BaseServiceMongoImpl[models.Problem]
}

// NewProblemService tạo mới ProblemService
func NewProblemService() (*ProblemService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Problems)
	if !exist {
		return nil, fmt.Errorf("failed to get problems collection: %v", common.ErrNotFound)
	}

	service := &ProblemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Problem](collection),
	}
	service.SetSearchFields("name")
	service.SetFilterFields("name", "describe", "isSystem", "createdAt")
	return service, nil
}

package main

import (
	"context"

	basesvc "phone_commerce/internal/api/base/service"
	problemmodels "phone_commerce/internal/api/problem/models"
	problemsvc "phone_commerce/internal/api/problem/service"
	"phone_commerce/internal/global"
	"phone_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Danh mục lỗi máy mặc định. Các bản ghi này được seed với IsSystem = true
// nên không sửa hay xóa được qua API.
var defaultProblems = []problemmodels.Problem{
	{Name: "Màn hình", Describe: "Vỡ, sọc, chảy mực, không cảm ứng"},
	{Name: "Pin", Describe: "Chai pin, phồng pin, tụt pin nhanh"},
	{Name: "Nguồn", Describe: "Không lên nguồn, sập nguồn"},
	{Name: "Camera", Describe: "Mờ, rung, không lấy nét"},
	{Name: "Loa / Mic", Describe: "Mất tiếng, rè, nhỏ tiếng"},
	{Name: "Sạc", Describe: "Không nhận sạc, chân sạc lỏng"},
	{Name: "Wifi / Sóng", Describe: "Yếu sóng, không bắt được wifi"},
	{Name: "Face ID / Vân tay", Describe: "Không nhận khuôn mặt hoặc vân tay"},
}

// InitDefaultData seed dữ liệu mặc định khi bật INITMODE.
// Chạy lại nhiều lần an toàn: bản ghi đã tồn tại (theo name) được bỏ qua.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE disabled, skipping default data seed")
		return
	}

	service, err := problemsvc.NewProblemService()
	if err != nil {
		log.Fatalf("Failed to create problem service for seeding: %v", err)
	}

	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())
	seeded := 0
	for _, problem := range defaultProblems {
		exists, err := service.DocumentExists(ctx, bson.M{"name": problem.Name})
		if err != nil {
			log.Warnf("Failed to check problem %q: %v", problem.Name, err)
			continue
		}
		if exists {
			continue
		}

		problem.IsSystem = true
		if _, err := service.InsertOne(ctx, problem); err != nil {
			log.Warnf("Failed to seed problem %q: %v", problem.Name, err)
			continue
		}
		seeded++
	}
	log.Infof("Default data seed completed, %d problem(s) inserted", seeded)
}

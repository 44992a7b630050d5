// Package dashboardsvc - service tổng hợp số liệu bán hàng và tài chính.
//
// Dashboard chỉ đọc: sáu collection sales, expenses, incomes, couriers,
// vendor_transactions, purchases do hệ thống POS ghi, backend tổng hợp độc lập
// từng collection trong cùng cửa sổ thời gian rồi gộp kết quả. Collection
// không có bản ghi nào khớp sẽ vắng mặt trong kết quả gộp và được mặc định 0.
package dashboardsvc

import (
	"context"
	"fmt"
	"time"

	"phone_commerce/internal/common"
	"phone_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Nhãn category chuẩn của sản phẩm dùng cho định giá tồn kho
const (
	CategoryNewPhone    = "NEW PHONE"
	CategorySecondHand  = "2HAND"
	CategoryAccessories = "ACCESSORIES"
)

// sumSource mô tả một collection nguồn và field tiền cần cộng
type sumSource struct {
	key        string // key trong kết quả calculation
	collection *mongo.Collection
	amountExpr string // field tiền: "$total" cho đơn bán/nhập, "$amount" cho còn lại
}

// DashboardService tổng hợp số liệu từ các collection do POS ghi
type DashboardService struct {
	sources  []sumSource
	products *mongo.Collection
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	names := global.MongoDB_ColNames
	specs := []struct {
		key        string
		colName    string
		amountExpr string
	}{
		{"sale", names.Sales, "$total"},
		{"expense", names.Expenses, "$amount"},
		{"income", names.Incomes, "$amount"},
		{"courier", names.Couriers, "$amount"},
		{"transaction", names.VendorTransactions, "$amount"},
		{"purchase", names.Purchases, "$total"},
	}

	service := &DashboardService{}
	for _, spec := range specs {
		collection, exist := global.RegistryCollections.Get(spec.colName)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", spec.colName, common.ErrNotFound)
		}
		service.sources = append(service.sources, sumSource{
			key:        spec.key,
			collection: collection,
			amountExpr: spec.amountExpr,
		})
	}

	products, exist := global.RegistryCollections.Get(names.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	service.products = products
	return service, nil
}

// DateWindow tính cửa sổ thời gian từ tham số day:
//   - day == 0: hôm nay [00:00 hôm nay, 00:00 ngày mai)
//   - day == 1: hôm qua [00:00 hôm qua, 00:00 hôm nay)
//   - day > 1: day ngày gần nhất [00:00 của (hôm nay - day), không giới hạn trên)
//   - day < 0: từ hôm nay trở đi, không giới hạn trên
//
// Trả về start, end và hasEnd = false khi cửa sổ mở về phía trên.
func DateWindow(day int, now time.Time) (start time.Time, end time.Time, hasEnd bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case day == 0:
		return today, today.AddDate(0, 0, 1), true
	case day == 1:
		return today.AddDate(0, 0, -1), today, true
	case day > 1:
		return today.AddDate(0, 0, -day), time.Time{}, false
	default:
		return today, time.Time{}, false
	}
}

// dateFilter tạo điều kiện lọc theo field date (Unix milli) cho cửa sổ thời gian
func dateFilter(start, end time.Time, hasEnd bool) bson.M {
	cond := bson.M{"$gte": start.UnixMilli()}
	if hasEnd {
		cond["$lt"] = end.UnixMilli()
	}
	return cond
}

// sumCollection cộng field tiền của một collection trong cửa sổ thời gian và shop.
// Trả về (0, false) khi không có bản ghi nào khớp.
func sumCollection(ctx context.Context, src sumSource, shopID primitive.ObjectID, window bson.M) (float64, bool, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"shop": shopID, "date": window}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": src.amountExpr},
		}},
	}

	cursor, err := src.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, false, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, false, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return 0, false, nil
	}
	return results[0].Total, true, nil
}

// SaleDashboard tổng hợp doanh số trong cửa sổ thời gian của tham số day
// cùng với giá trị tồn kho hiện tại theo nhãn category chuẩn.
func (s *DashboardService) SaleDashboard(ctx context.Context, shopID primitive.ObjectID, day int) (map[string]interface{}, error) {
	start, end, hasEnd := DateWindow(day, time.Now())
	window := dateFilter(start, end, hasEnd)

	calculation := map[string]interface{}{}
	for _, src := range s.sources {
		total, found, err := sumCollection(ctx, src, shopID, window)
		if err != nil {
			return nil, err
		}
		// Collection vắng mặt đóng góp 0
		if !found {
			total = 0
		}
		calculation[src.key] = total
	}

	stock, err := s.stockValuation(ctx, shopID)
	if err != nil {
		return nil, err
	}
	calculation["newPhoneValue"] = stock[CategoryNewPhone]
	calculation["secondHandValue"] = stock[CategorySecondHand]
	calculation["accessoriesValue"] = stock[CategoryAccessories]

	return calculation, nil
}

// stockValuation tính tổng quantity * purchasePrice của products theo category
func (s *DashboardService) stockValuation(ctx context.Context, shopID primitive.ObjectID) (map[string]float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"shop": shopID}},
		{"$group": bson.M{
			"_id":   "$category",
			"value": bson.M{"$sum": bson.M{"$multiply": []interface{}{"$quantity", "$purchasePrice"}}},
		}},
	}

	cursor, err := s.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Category string  `bson:"_id"`
		Value    float64 `bson:"value"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	valuation := map[string]float64{}
	for _, r := range results {
		valuation[r.Category] = r.Value
	}
	return valuation, nil
}

// StatementRow một dòng sao kê: tổng của từng nguồn trong một ngày của tháng
type StatementRow struct {
	Day         int     `json:"day"`
	Sale        float64 `json:"sale"`
	Expense     float64 `json:"expense"`
	Income      float64 `json:"income"`
	Courier     float64 `json:"courier"`
	Transaction float64 `json:"transaction"`
	Purchase    float64 `json:"purchase"`
}

// Statement tạo sao kê theo ngày cho một tháng: mỗi ngày một dòng với tổng
// của từng nguồn trong ngày đó.
func (s *DashboardService) Statement(ctx context.Context, shopID primitive.ObjectID, month, year int) ([]StatementRow, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	nextMonth := monthStart.AddDate(0, 1, 0)
	daysInMonth := nextMonth.AddDate(0, 0, -1).Day()

	rows := make([]StatementRow, daysInMonth)
	for i := range rows {
		rows[i].Day = i + 1
	}

	window := bson.M{"$gte": monthStart.UnixMilli(), "$lt": nextMonth.UnixMilli()}
	for _, src := range s.sources {
		perDay, err := sumByDay(ctx, src, shopID, window)
		if err != nil {
			return nil, err
		}
		for day, total := range perDay {
			if day < 1 || day > daysInMonth {
				continue
			}
			row := &rows[day-1]
			switch src.key {
			case "sale":
				row.Sale = total
			case "expense":
				row.Expense = total
			case "income":
				row.Income = total
			case "courier":
				row.Courier = total
			case "transaction":
				row.Transaction = total
			case "purchase":
				row.Purchase = total
			}
		}
	}
	return rows, nil
}

// sumByDay cộng field tiền theo từng ngày trong tháng ($dayOfMonth của date)
func sumByDay(ctx context.Context, src sumSource, shopID primitive.ObjectID, window bson.M) (map[int]float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"shop": shopID, "date": window}},
		{"$group": bson.M{
			"_id":   bson.M{"$dayOfMonth": bson.M{"$toDate": "$date"}},
			"total": bson.M{"$sum": src.amountExpr},
		}},
	}

	cursor, err := src.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Day   int     `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	perDay := map[int]float64{}
	for _, r := range results {
		perDay[r.Day] = r.Total
	}
	return perDay, nil
}

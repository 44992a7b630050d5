package router

import (
	"github.com/gofiber/fiber/v3"

	"phone_commerce/internal/api/middleware"
)

// ResourceHandler định nghĩa interface cho bộ handler CRUD của một resource
type ResourceHandler interface {
	// Create
	AddOne(c fiber.Ctx) error

	// Read
	GetAll(c fiber.Ctx) error
	GetAllByShop(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error
	UpdateMultiple(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error
	DeleteMultiple(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// ResourceConfig cấu hình các operation được phép cho mỗi resource
type ResourceConfig struct {
	Add     bool // POST /add
	GetAll  bool // POST /get-all
	ByShop  bool // POST /get-all-by-shop
	GetById bool // GET /:id
	UpdById bool // PUT /update/:id
	UpdMany bool // PUT /update-multiple
	DelById bool // DELETE /delete/:id
	DelMany bool // POST /delete-multiple
}

// Config dùng chung cho các resource
var (
	// DefaultConfig cho phép đầy đủ các operation
	DefaultConfig = ResourceConfig{
		Add: true, GetAll: true, ByShop: true, GetById: true,
		UpdById: true, UpdMany: true, DelById: true, DelMany: true,
	}

	// GlobalConfig cho resource không scope theo shop (shops, problem): bỏ get-all-by-shop
	GlobalConfig = ResourceConfig{
		Add: true, GetAll: true, ByShop: false, GetById: true,
		UpdById: true, UpdMany: true, DelById: true, DelMany: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() trên group.
// Lưu ý Fiber v3: truyền middleware trực tiếp vào router.Get(path, mw, handler)
// không được gọi đúng thứ tự, phải đăng ký qua group.Use().
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path tương đối, prefix đã nằm trong group
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterResourceRoutes đăng ký các route chuẩn cho một resource dưới /api/v1/<prefix>.
// Mọi route đều đi qua ShopContext để shop ID sẵn sàng trong Locals.
func (r *Router) RegisterResourceRoutes(router fiber.Router, prefix string, h ResourceHandler, config ResourceConfig) {
	shopContext := middleware.ShopContext()
	mws := []fiber.Handler{shopContext}

	// Create
	if config.Add {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/add", mws, h.AddOne)
	}

	// Read
	if config.GetAll {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/get-all", mws, h.GetAll)
	}
	if config.ByShop {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/get-all-by-shop", mws, h.GetAllByShop)
	}

	// Update
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update/:id", mws, h.UpdateById)
	}
	if config.UpdMany {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update-multiple", mws, h.UpdateMultiple)
	}

	// Delete
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete/:id", mws, h.DeleteById)
	}
	if config.DelMany {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/delete-multiple", mws, h.DeleteMultiple)
	}

	// GET /:id đăng ký cuối để các path tĩnh không bị nuốt bởi param route
	if config.GetById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", mws, h.FindOneById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}

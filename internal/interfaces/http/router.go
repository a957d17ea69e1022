package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	JWTSecret string
}

// Router registra las rutas de la API. El rol requerido por cada endpoint se
// ata aquí, estáticamente, encadenando RequireRole tras AuthMiddleware; una
// ruta sin RequireRole admite a cualquier identidad (o a anónimos si tampoco
// lleva AuthMiddleware).
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	customerOnly := RequireRole(entity.RoleCustomer)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Products: lectura pública, mutación solo admin
	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Patch("/:id/deactivate", authRequired, adminOnly, productHandler.Deactivate)
	// Ruta legacy: borrado físico, reemplazada por deactivate
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Orders: todo requiere identidad
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := app.Group("/orders", authRequired)
	orders.Post("/", customerOnly, orderHandler.Create)
	orders.Get("/user/:userId", customerOnly, orderHandler.FindByUser)
	orders.Get("/", adminOnly, orderHandler.FindAll)
	orders.Get("/:id", orderHandler.FindOne) // cualquier rol autenticado
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/brico-pos/internal/application/auth"
	"github.com/tu-usuario/brico-pos/internal/application/inventory"
	"github.com/tu-usuario/brico-pos/internal/application/receipt"
	"github.com/tu-usuario/brico-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC           *usecase.SaleUseCase
	CustomerUC       *usecase.CustomerUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.UseCase
	ReceiptUC        *receipt.UseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	Log              zerolog.Logger
}

// Router registra las rutas de la API. Las rutas fijas (stats, categories,
// search, ...) van antes que las paramétricas :id para que Fiber no las
// capture como identificadores.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC, deps.Log)
	sales.Get("/stats", saleHandler.Stats)
	sales.Get("/categories", saleHandler.Categories)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id/receipt", saleHandler.DownloadReceipt)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/types", customerHandler.Types)
	customers.Get("/top", customerHandler.Top)
	customers.Get("/inactive", customerHandler.Inactive)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id/stats", customerHandler.Stats)
	customers.Get("/:id/history", customerHandler.PurchaseHistory)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/categories", productHandler.Categories)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Purchase orders
	orders := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC, deps.Log)
	orders.Get("/", poHandler.List)
	orders.Post("/", poHandler.Create)
	orders.Put("/:id/status", poHandler.UpdateStatus)
	orders.Get("/:id", poHandler.GetByID)
	orders.Put("/:id", poHandler.Update)
	orders.Delete("/:id", poHandler.Delete)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery, deps.Log)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements/:product_id", inventoryHandler.ListByProduct)
}

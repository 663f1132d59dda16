package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trendify-api/internal/application/auth"
	"github.com/jhoicas/trendify-api/internal/application/store"
	"github.com/jhoicas/trendify-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ItemUC     *usecase.ItemUseCase
	CartUC     *usecase.CartUseCase
	FavoriteUC *usecase.FavoriteUseCase
	PurchaseUC *store.PurchaseUseCase
	ReceiptUC  *store.ReceiptUseCase
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/confirm", authHandler.ConfirmEmail)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (lectura pública)
	itemHandler := NewItemHandler(deps.ItemUC)
	items := api.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/featured", itemHandler.Featured)
	items.Get("/search", itemHandler.Search)
	items.Get("/:id", itemHandler.GetByID)

	categories := api.Group("/categories")
	categories.Get("/", itemHandler.ListCategories)
	categories.Get("/:id/items", itemHandler.ListByCategory)
	categories.Get("/:id", itemHandler.GetCategory)

	// Recuperación de contraseña (público: el usuario no tiene sesión)
	userHandler := NewUserHandler(deps.UserUC)
	api.Post("/users/recover-password", userHandler.RecoverPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Gestión del catálogo (protegido)
	protected.Post("/items", itemHandler.Create)
	protected.Put("/items/:id", itemHandler.Update)
	protected.Delete("/items/:id", itemHandler.Delete)
	protected.Post("/categories", itemHandler.CreateCategory)

	// Usuarios (protegido)
	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.Update)
	users.Delete("/me", userHandler.Delete)
	users.Put("/me/password", userHandler.ChangePassword)
	users.Get("/:id", userHandler.GetByID)

	// Carrito (protegido)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Post("/", cartHandler.Add)
	cart.Get("/", cartHandler.List)
	cart.Delete("/:itemId", cartHandler.Remove)

	// Favoritos (protegido)
	favorites := protected.Group("/favorites")
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	favorites.Post("/:itemId", favoriteHandler.Add)
	favorites.Get("/", favoriteHandler.List)
	favorites.Delete("/:itemId", favoriteHandler.Remove)

	// Compras (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ReceiptUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/receipt", purchaseHandler.Receipt)
}

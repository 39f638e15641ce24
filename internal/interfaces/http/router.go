package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/analytics"
	"github.com/jhoicas/feedme-api/internal/application/auth"
	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/session"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RestaurantUC *usecase.RestaurantUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	DishUC       *usecase.DishUseCase
	MenuUC       *usecase.MenuUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	ReportUC     *usecase.ReportUseCase
	ReportPDFUC  *usecase.ReportPDFUseCase
	OrderUC      *usecase.OrderUseCase
	SalesUC      *analytics.SalesUseCase
	SessionStore *session.Store
	JWTSecret    string
}

// Router registra las rutas de navegación (cookie de sesión + guard por rol)
// y la API JSON (Bearer Token).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionStore)
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	dishHandler := NewDishHandler(deps.DishUC)
	menuHandler := NewMenuHandler(deps.MenuUC)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDFUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	dashboardHandler := NewDashboardHandler(
		deps.RestaurantUC, deps.EmployeeUC, deps.DishUC, deps.MenuUC,
		deps.PurchaseUC, deps.ReportUC, deps.OrderUC, deps.SalesUC,
	)

	// Toda ruta ve la sesión decodificada (nil si la cookie falta o está rota).
	app.Use(SessionMiddleware(deps.SessionStore))

	// Páginas públicas
	app.Get(rbac.RouteLogin, authHandler.LoginPage)
	app.Get(rbac.RouteSignup, authHandler.SignupPage)
	app.Get(rbac.RouteLanding, dashboardHandler.Landing)
	app.Post("/logout", authHandler.Logout)

	// Páginas por rol (el guard redirige al rol equivocado a su propia home)
	app.Get(rbac.RouteAdmin, Guard(rbac.RoleAdmin), dashboardHandler.Admin)
	app.Get(rbac.RouteGRH, Guard(rbac.RoleAdmin), dashboardHandler.GRH)
	app.Get(rbac.RouteRestaurants, Guard(rbac.RoleAdmin), dashboardHandler.Restaurants)
	app.Get(rbac.RouteMenu, Guard(rbac.RoleAdmin), dashboardHandler.Menu)
	app.Get(rbac.RouteDirector, Guard(rbac.RoleDirector), dashboardHandler.Director)
	app.Get(rbac.RouteChef, Guard(rbac.RoleChef), dashboardHandler.Chef)
	app.Get(rbac.RouteCashier, Guard(rbac.RoleCashier), dashboardHandler.Cashier)
	app.Get(rbac.RouteCustomer, Guard(rbac.RoleClient), dashboardHandler.Customer)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authHandler.Me)

	// Menú del día vigente (público: lo consume el landing y el cliente)
	api.Get("/menus/today", menuHandler.Today)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuentas de personal (solo admin)
	protected.Post("/staff", RequireRole(rbac.RoleAdmin), authHandler.CreateStaff)

	// Sucursales (admin gestiona; el resto del personal consulta)
	restaurants := protected.Group("/restaurants")
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Post("/", RequireRole(rbac.RoleAdmin), restaurantHandler.Create)
	restaurants.Put("/:id", RequireRole(rbac.RoleAdmin), restaurantHandler.Update)
	restaurants.Delete("/:id", RequireRole(rbac.RoleAdmin), restaurantHandler.Delete)

	// RRHH (admin y director)
	employees := protected.Group("/employees", RequireRole(rbac.RoleAdmin, rbac.RoleDirector))
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Catálogo de platos (admin y chef gestionan)
	dishes := protected.Group("/dishes")
	dishes.Get("/", dishHandler.List)
	dishes.Get("/:id", dishHandler.GetByID)
	dishes.Post("/", RequireRole(rbac.RoleAdmin, rbac.RoleChef), dishHandler.Create)
	dishes.Put("/:id", RequireRole(rbac.RoleAdmin, rbac.RoleChef), dishHandler.Update)
	dishes.Delete("/:id", RequireRole(rbac.RoleAdmin, rbac.RoleChef), dishHandler.Delete)

	// Insumos (admin, director y chef)
	ingredients := protected.Group("/ingredients", RequireRole(rbac.RoleAdmin, rbac.RoleDirector, rbac.RoleChef))
	ingredients.Post("/", dishHandler.CreateIngredient)
	ingredients.Get("/", dishHandler.ListIngredients)

	// Menú del día (admin y chef gestionan)
	menus := protected.Group("/menus")
	menus.Get("/", menuHandler.List)
	menus.Get("/:id", menuHandler.GetByID)
	menus.Post("/", RequireRole(rbac.RoleAdmin, rbac.RoleChef), menuHandler.Create)
	menus.Post("/:id/publish", RequireRole(rbac.RoleAdmin, rbac.RoleChef), menuHandler.Publish)
	menus.Delete("/:id", RequireRole(rbac.RoleAdmin, rbac.RoleChef), menuHandler.Delete)

	// Compras de insumos (director)
	purchases := protected.Group("/purchases", RequireRole(rbac.RoleAdmin, rbac.RoleDirector))
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Cierres diarios (director y cajero; el PDF también para admin)
	reports := protected.Group("/reports", RequireRole(rbac.RoleAdmin, rbac.RoleDirector, rbac.RoleCashier))
	reports.Post("/", reportHandler.Generate)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/pdf", reportHandler.DownloadPDF)
	reports.Delete("/:id", RequireRole(rbac.RoleAdmin, rbac.RoleDirector), reportHandler.Delete)

	// Pedidos (cliente crea; el personal de la sucursal los avanza)
	orders := protected.Group("/orders")
	orders.Post("/", RequireRole(rbac.RoleClient), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", RequireRole(rbac.RoleChef, rbac.RoleCashier, rbac.RoleDirector), orderHandler.UpdateStatus)

	// Cualquier ruta no registrada
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})
}

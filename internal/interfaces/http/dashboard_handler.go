package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feedme-api/internal/application/analytics"
	"github.com/jhoicas/feedme-api/internal/application/dto"
	"github.com/jhoicas/feedme-api/internal/application/table"
	"github.com/jhoicas/feedme-api/internal/application/usecase"
	"github.com/jhoicas/feedme-api/internal/domain/rbac"
)

// tableLimit registros que alimentan la tabla de una pantalla.
const tableLimit = 100

// DashboardHandler arma las pantallas por rol: la tabla activa del tab más
// los widgets del rol. Los query params son tab (colección), filter (categoría
// exacta) y q (término de búsqueda).
type DashboardHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	employeeUC   *usecase.EmployeeUseCase
	dishUC       *usecase.DishUseCase
	menuUC       *usecase.MenuUseCase
	purchaseUC   *usecase.PurchaseUseCase
	reportUC     *usecase.ReportUseCase
	orderUC      *usecase.OrderUseCase
	salesUC      *analytics.SalesUseCase
}

// NewDashboardHandler construye el handler con todos los casos de uso que
// alimentan pantallas.
func NewDashboardHandler(
	restaurantUC *usecase.RestaurantUseCase,
	employeeUC *usecase.EmployeeUseCase,
	dishUC *usecase.DishUseCase,
	menuUC *usecase.MenuUseCase,
	purchaseUC *usecase.PurchaseUseCase,
	reportUC *usecase.ReportUseCase,
	orderUC *usecase.OrderUseCase,
	salesUC *analytics.SalesUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		restaurantUC: restaurantUC,
		employeeUC:   employeeUC,
		dishUC:       dishUC,
		menuUC:       menuUC,
		purchaseUC:   purchaseUC,
		reportUC:     reportUC,
		orderUC:      orderUC,
		salesUC:      salesUC,
	}
}

// Admin pantalla del administrador de la cadena: sucursales, personal,
// platos y menús de toda la cadena.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return h.adminTab(c, c.Query("tab", "restaurants"))
}

// GRH pantalla de recursos humanos del admin.
func (h *DashboardHandler) GRH(c *fiber.Ctx) error {
	return h.adminTab(c, "employees")
}

// Restaurants pantalla de sucursales del admin.
func (h *DashboardHandler) Restaurants(c *fiber.Ctx) error {
	return h.adminTab(c, "restaurants")
}

// Menu pantalla de menús del admin.
func (h *DashboardHandler) Menu(c *fiber.Ctx) error {
	return h.adminTab(c, "menus")
}

func (h *DashboardHandler) adminTab(c *fiber.Ctx, tab string) error {
	filter, q := c.Query("filter"), c.Query("q")

	var view table.View
	switch tab {
	case "employees":
		out, err := h.employeeUC.List(c.Context(), tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = employeeTable(out.Items, filter, q)
	case "dishes":
		out, err := h.dishUC.List(c.Context(), tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = dishTable(out.Items, filter, q)
	case "menus":
		restaurantID := c.Query("restaurant_id")
		if restaurantID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAM", Message: "el tab menus requiere restaurant_id"})
		}
		out, err := h.menuUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = menuTable(out.Items, filter, q)
	default:
		tab = "restaurants"
		out, err := h.restaurantUC.List(c.Context(), tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = restaurantTable(out.Items, filter, q)
	}

	resp := dto.DashboardResponse{Role: string(rbac.RoleAdmin), Tab: tab, Table: view}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		resp.Summary = h.summary(c, restaurantID)
	}
	return c.JSON(resp)
}

// Director pantalla del director de sucursal: su personal, compras, cierres
// y pedidos, con el widget de ventas.
func (h *DashboardHandler) Director(c *fiber.Ctx) error {
	sess := GetSession(c)
	restaurantID := sess.RestaurantID
	tab := c.Query("tab", "employees")
	filter, q := c.Query("filter"), c.Query("q")

	var view table.View
	switch tab {
	case "purchases":
		out, err := h.purchaseUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = purchaseTable(out.Items, filter, q)
	case "reports":
		out, err := h.reportUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = reportTable(out.Items, filter, q)
	case "orders":
		out, err := h.orderUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = orderTable(out.Items, filter, q)
	default:
		tab = "employees"
		out, err := h.employeeUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = employeeTable(out.Items, filter, q)
	}

	return c.JSON(dto.DashboardResponse{
		Role:    string(rbac.RoleDirector),
		Tab:     tab,
		Table:   view,
		Summary: h.summary(c, restaurantID),
	})
}

// Chef pantalla de cocina: menú del día, catálogo de platos y la cola de
// pedidos en preparación.
func (h *DashboardHandler) Chef(c *fiber.Ctx) error {
	sess := GetSession(c)
	restaurantID := sess.RestaurantID
	tab := c.Query("tab", "menus")
	filter, q := c.Query("filter"), c.Query("q")

	var view table.View
	switch tab {
	case "dishes":
		out, err := h.dishUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = dishTable(out.Items, filter, q)
	case "orders":
		out, err := h.orderUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = orderTable(out.Items, filter, q)
	default:
		tab = "menus"
		out, err := h.menuUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = menuTable(out.Items, filter, q)
	}

	return c.JSON(dto.DashboardResponse{Role: string(rbac.RoleChef), Tab: tab, Table: view})
}

// Cashier pantalla de caja: pedidos del día con el widget de ventas.
func (h *DashboardHandler) Cashier(c *fiber.Ctx) error {
	sess := GetSession(c)
	restaurantID := sess.RestaurantID
	tab := c.Query("tab", "orders")
	filter, q := c.Query("filter"), c.Query("q")

	var view table.View
	switch tab {
	case "reports":
		out, err := h.reportUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = reportTable(out.Items, filter, q)
	default:
		tab = "orders"
		out, err := h.orderUC.ListByRestaurant(c.Context(), restaurantID, tableLimit, 0)
		if err != nil {
			return internalError(c, err)
		}
		view = orderTable(out.Items, filter, q)
	}

	return c.JSON(dto.DashboardResponse{
		Role:    string(rbac.RoleCashier),
		Tab:     tab,
		Table:   view,
		Summary: h.summary(c, restaurantID),
	})
}

// Customer pantalla del cliente: su histórico de pedidos.
func (h *DashboardHandler) Customer(c *fiber.Ctx) error {
	sess := GetSession(c)
	filter, q := c.Query("filter"), c.Query("q")

	out, err := h.orderUC.ListByCustomer(c.Context(), sess.ID, tableLimit, 0)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.DashboardResponse{
		Role:  string(rbac.RoleClient),
		Tab:   "orders",
		Table: orderTable(out.Items, filter, q),
	})
}

// Landing página pública de la cadena.
func (h *DashboardHandler) Landing(c *fiber.Ctx) error {
	out, err := h.restaurantUC.List(c.Context(), tableLimit, 0)
	if err != nil {
		return internalError(c, err)
	}
	view := table.New(out.Items, restaurantColumns()).
		WithID(func(r dto.RestaurantResponse) string { return r.ID }).
		View()
	return c.JSON(dto.DashboardResponse{Role: "public", Tab: "restaurants", Table: view})
}

// summary trae el widget de ventas; ante un fallo transitorio devuelve el
// último valor conocido en lugar de romper la pantalla.
func (h *DashboardHandler) summary(c *fiber.Ctx, restaurantID string) *dto.SalesSummary {
	if restaurantID == "" {
		return nil
	}
	s, err := h.salesUC.Summary(c.Context(), restaurantID)
	if err != nil {
		return h.salesUC.LastKnown(restaurantID)
	}
	return s
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// ── Tablas por colección ──────────────────────────────────────────────────────

func restaurantColumns() []table.Column[dto.RestaurantResponse] {
	return []table.Column[dto.RestaurantResponse]{
		{Header: "Nombre", Key: "name", Value: func(r dto.RestaurantResponse) any { return r.Name }},
		{Header: "Ciudad", Key: "city", Value: func(r dto.RestaurantResponse) any { return r.City }},
		{Header: "Dirección", Key: "address", Value: func(r dto.RestaurantResponse) any { return r.Address }},
		{Header: "Teléfono", Key: "phone", Value: func(r dto.RestaurantResponse) any { return r.Phone }},
		{Header: "Estado", Key: "status", Value: func(r dto.RestaurantResponse) any { return r.Status }},
	}
}

func restaurantTable(items []dto.RestaurantResponse, filter, q string) table.View {
	t := table.New(items, restaurantColumns()).
		WithID(func(r dto.RestaurantResponse) string { return r.ID }).
		WithStatus(func(r dto.RestaurantResponse) string { return r.Status },
			table.FilterOption{Label: "Todas", Value: table.FilterAll},
			table.FilterOption{Label: "Abiertas", Value: "open"},
			table.FilterOption{Label: "Cerradas", Value: "closed"},
		).
		WithEmail(func(r dto.RestaurantResponse) string { return r.Email }).
		WithActions(true, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func employeeTable(items []dto.EmployeeResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.EmployeeResponse]{
		{Header: "Nombre", Key: "name", Value: func(e dto.EmployeeResponse) any { return e.Name }},
		{Header: "Cargo", Key: "position", Value: func(e dto.EmployeeResponse) any { return e.Position }},
		{Header: "Teléfono", Key: "phone", Value: func(e dto.EmployeeResponse) any { return e.Phone }},
		{Header: "Salario", Key: "salary",
			Value: func(e dto.EmployeeResponse) any { return e.Salary },
			Cell:  func(e dto.EmployeeResponse) string { return "$" + e.Salary.StringFixed(2) }},
		{Header: "Estado", Key: "status", Value: func(e dto.EmployeeResponse) any { return e.Status }},
	}).
		WithID(func(e dto.EmployeeResponse) string { return e.ID }).
		WithStatus(func(e dto.EmployeeResponse) string { return e.Status },
			table.FilterOption{Label: "Todos", Value: table.FilterAll},
			table.FilterOption{Label: "Activos", Value: "active"},
			table.FilterOption{Label: "En licencia", Value: "on_leave"},
			table.FilterOption{Label: "Inactivos", Value: "inactive"},
		).
		WithEmail(func(e dto.EmployeeResponse) string { return e.Email }).
		WithActions(true, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func dishTable(items []dto.DishResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.DishResponse]{
		{Header: "Nombre", Key: "name", Value: func(d dto.DishResponse) any { return d.Name }},
		{Header: "Categoría", Key: "category", Value: func(d dto.DishResponse) any { return d.Category }},
		{Header: "Precio", Key: "price",
			Value: func(d dto.DishResponse) any { return d.Price },
			Cell:  func(d dto.DishResponse) string { return "$" + d.Price.StringFixed(2) }},
		{Header: "Estado", Key: "status", Value: func(d dto.DishResponse) any { return d.Status }},
	}).
		WithID(func(d dto.DishResponse) string { return d.ID }).
		WithStatus(func(d dto.DishResponse) string { return d.Status },
			table.FilterOption{Label: "Todos", Value: table.FilterAll},
			table.FilterOption{Label: "Disponibles", Value: "available"},
			table.FilterOption{Label: "No disponibles", Value: "unavailable"},
		).
		WithActions(true, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func menuTable(items []dto.MenuResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.MenuResponse]{
		{Header: "Fecha", Key: "menu_date", Value: func(m dto.MenuResponse) any { return m.MenuDate }},
		{Header: "Packs", Key: "packs",
			Value: func(m dto.MenuResponse) any { return len(m.Packs) },
			Cell:  func(m dto.MenuResponse) string { return packsLabel(len(m.Packs)) }},
		{Header: "Estado", Key: "status", Value: func(m dto.MenuResponse) any { return m.Status }},
	}).
		WithID(func(m dto.MenuResponse) string { return m.ID }).
		WithStatus(func(m dto.MenuResponse) string { return m.Status },
			table.FilterOption{Label: "Todos", Value: table.FilterAll},
			table.FilterOption{Label: "Borradores", Value: "draft"},
			table.FilterOption{Label: "Publicados", Value: "published"},
		).
		WithActions(true, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func purchaseTable(items []dto.PurchaseResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.PurchaseResponse]{
		{Header: "Proveedor", Key: "supplier", Value: func(p dto.PurchaseResponse) any { return p.Supplier }},
		{Header: "Cantidad", Key: "quantity",
			Value: func(p dto.PurchaseResponse) any { return p.Quantity },
			Cell:  func(p dto.PurchaseResponse) string { return p.Quantity.String() }},
		{Header: "Costo total", Key: "total_cost",
			Value: func(p dto.PurchaseResponse) any { return p.TotalCost },
			Cell:  func(p dto.PurchaseResponse) string { return "$" + p.TotalCost.StringFixed(2) }},
		{Header: "Fecha", Key: "purchased_at",
			Value: func(p dto.PurchaseResponse) any { return p.PurchasedAt.Format("2006-01-02") }},
	}).
		WithID(func(p dto.PurchaseResponse) string { return p.ID }).
		WithActions(false, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func reportTable(items []dto.ReportResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.ReportResponse]{
		{Header: "Fecha", Key: "report_date", Value: func(r dto.ReportResponse) any { return r.ReportDate }},
		{Header: "Ventas", Key: "total_sales",
			Value: func(r dto.ReportResponse) any { return r.TotalSales },
			Cell:  func(r dto.ReportResponse) string { return "$" + r.TotalSales.StringFixed(2) }},
		{Header: "Pedidos", Key: "total_orders",
			Value: func(r dto.ReportResponse) any { return r.TotalOrders }},
		{Header: "Gastos", Key: "total_expenses",
			Value: func(r dto.ReportResponse) any { return r.TotalExpenses },
			Cell:  func(r dto.ReportResponse) string { return "$" + r.TotalExpenses.StringFixed(2) }},
	}).
		WithID(func(r dto.ReportResponse) string { return r.ID }).
		WithActions(false, true)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func orderTable(items []dto.OrderResponse, filter, q string) table.View {
	t := table.New(items, []table.Column[dto.OrderResponse]{
		{Header: "Pedido", Key: "id", Value: func(o dto.OrderResponse) any { return o.ID }},
		{Header: "Líneas", Key: "items",
			Value: func(o dto.OrderResponse) any { return len(o.Items) }},
		{Header: "Total", Key: "total",
			Value: func(o dto.OrderResponse) any { return o.Total },
			Cell:  func(o dto.OrderResponse) string { return "$" + o.Total.StringFixed(2) }},
		{Header: "Estado", Key: "status", Value: func(o dto.OrderResponse) any { return o.Status }},
		{Header: "Hora", Key: "created_at",
			Value: func(o dto.OrderResponse) any { return o.CreatedAt.Format("15:04") }},
	}).
		WithID(func(o dto.OrderResponse) string { return o.ID }).
		WithStatus(func(o dto.OrderResponse) string { return o.Status },
			table.FilterOption{Label: "Todos", Value: table.FilterAll},
			table.FilterOption{Label: "Recibidos", Value: "received"},
			table.FilterOption{Label: "En preparación", Value: "preparing"},
			table.FilterOption{Label: "Listos", Value: "ready"},
			table.FilterOption{Label: "Entregados", Value: "delivered"},
			table.FilterOption{Label: "Cancelados", Value: "cancelled"},
		).
		WithActions(true, false)
	t.SetFilter(filter)
	t.SetSearch(q)
	return t.View()
}

func packsLabel(n int) string {
	if n == 1 {
		return "1 pack"
	}
	return strconv.Itoa(n) + " packs"
}

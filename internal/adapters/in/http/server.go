// Package http exposes the inbound REST and SSE surface of the service.
// Handlers translate between wire payloads and application commands/queries;
// no business rules live here.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP requests to application use cases. It also hosts the
// streaming gateway, which needs direct access to the broadcaster to attach
// long-lived subscriptions.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	getMenuHandler        queries.GetMenuQueryHandler
	getMenuItemHandler    queries.GetMenuItemQueryHandler
	listCategoriesHandler queries.ListCategoriesQueryHandler

	broadcaster ports.OrderBroadcaster
	logger      *slog.Logger
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	listCategoriesHandler queries.ListCategoriesQueryHandler,
	broadcaster ports.OrderBroadcaster,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getMenuHandler:           getMenuHandler,
		getMenuItemHandler:       getMenuItemHandler,
		listCategoriesHandler:    listCategoriesHandler,
		broadcaster:              broadcaster,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/menu", s.GetMenu)
	v1.GET("/menu/categories", s.GetMenuCategories)
	v1.GET("/menu/:id", s.GetMenuItem)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.GET("/orders/:id/stream", s.StreamOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, kindValidationFailed, "Invalid request body")
	}

	selections := make([]commands.ItemSelection, len(req.Items))
	for i, item := range req.Items {
		selections[i] = commands.ItemSelection{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(
		selections,
		req.DeliveryDetails.Name,
		req.DeliveryDetails.Address,
		req.DeliveryDetails.Phone,
	)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	s.logger.Info("order created", "order_id", created.ID().String())
	return respondData(ctx, http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id - returns one order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, kindOrderNotFound, "Order not found")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderResponse(snapshot))
}

// GetOrders handles GET /api/v1/orders - returns all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	snapshots, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := make([]OrderResponse, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = toOrderResponse(snapshot)
	}
	return respondData(ctx, http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - applies a
// manual status override.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, kindOrderNotFound, "Order not found")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, kindValidationFailed, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	s.logger.Info("order status updated",
		"order_id", updated.ID().String(),
		"status", updated.Status().String())
	return respondData(ctx, http.StatusOK, toOrderResponse(updated))
}

// GetMenu handles GET /api/v1/menu - lists available menu items with
// pagination and optional category filter.
func (s *Server) GetMenu(ctx echo.Context) error {
	filter := menu.Filter{Category: ctx.QueryParam("category")}
	// Malformed page/limit values fall back to the catalog defaults.
	if v, err := parseQueryInt(ctx.QueryParam("page")); err == nil {
		filter.Page = v
	}
	if v, err := parseQueryInt(ctx.QueryParam("limit")); err == nil {
		filter.Limit = v
	}

	page, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery(filter))
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := make([]MenuItemResponse, len(page.Items))
	for i, item := range page.Items {
		response[i] = toMenuItemResponse(item)
	}
	return ctx.JSON(http.StatusOK, DataResponse{
		Success:    true,
		Data:       response,
		Pagination: &Pagination{Total: page.Total, Page: page.Page, Limit: page.Limit},
	})
}

// GetMenuItem handles GET /api/v1/menu/:id - returns one catalog entry.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	query, err := queries.NewGetMenuItemQuery(ctx.Param("id"))
	if err != nil {
		return respondDomainError(ctx, err)
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, http.StatusNotFound, kindItemNotFound, "Menu item not found")
	}

	return respondData(ctx, http.StatusOK, toMenuItemResponse(item))
}

// GetMenuCategories handles GET /api/v1/menu/categories.
func (s *Server) GetMenuCategories(ctx echo.Context) error {
	categories, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return respondDomainError(ctx, err)
	}
	return respondData(ctx, http.StatusOK, categories)
}

func respondData(ctx echo.Context, code int, data any) error {
	return ctx.JSON(code, DataResponse{Success: true, Data: data})
}

func respondError(ctx echo.Context, code int, kind, message string) error {
	return ctx.JSON(code, ErrorResponse{Success: false, Error: kind, Message: message})
}

// respondDomainError classifies a core failure and writes the error
// envelope.
func respondDomainError(ctx echo.Context, err error) error {
	code, kind := classifyError(err)
	return ctx.JSON(code, ErrorResponse{Success: false, Error: kind, Message: err.Error()})
}

// parseQueryInt parses a query parameter as a plain int.
func parseQueryInt(raw string) (int, error) {
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(raw)
}

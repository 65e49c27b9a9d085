// Package http exposes the kitchenpos commands and queries over the REST contract
// in api/openapi.yml.
package http

import (
	"log/slog"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query
// handlers.
type Server struct {
	// Command handlers
	createMenuHandler             commands.CreateMenuCommandHandler
	createTableHandler            commands.CreateTableCommandHandler
	changeTableEmptyHandler       commands.ChangeTableEmptyCommandHandler
	changeTableGuestNumberHandler commands.ChangeTableGuestNumberCommandHandler
	createOrderHandler            commands.CreateOrderCommandHandler
	changeOrderStatusHandler      commands.ChangeOrderStatusCommandHandler

	// Query handlers
	listMenusHandler  queries.ListMenusQueryHandler
	listTablesHandler queries.ListTablesQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateMenu             commands.CreateMenuCommandHandler
	CreateTable            commands.CreateTableCommandHandler
	ChangeTableEmpty       commands.ChangeTableEmptyCommandHandler
	ChangeTableGuestNumber commands.ChangeTableGuestNumberCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ChangeOrderStatus      commands.ChangeOrderStatusCommandHandler
	ListMenus              queries.ListMenusQueryHandler
	ListTables             queries.ListTablesQueryHandler
	ListOrders             queries.ListOrdersQueryHandler
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createMenuHandler:             handlers.CreateMenu,
		createTableHandler:            handlers.CreateTable,
		changeTableEmptyHandler:       handlers.ChangeTableEmpty,
		changeTableGuestNumberHandler: handlers.ChangeTableGuestNumber,
		createOrderHandler:            handlers.CreateOrder,
		changeOrderStatusHandler:      handlers.ChangeOrderStatus,
		listMenusHandler:              handlers.ListMenus,
		listTablesHandler:             handlers.ListTables,
		listOrdersHandler:             handlers.ListOrders,
		logger:                        logger.With("component", "http"),
	}
}

// ListMenus handles GET /api/menus.
func (s *Server) ListMenus(ctx echo.Context) error {
	menus, err := s.listMenusHandler.Handle(ctx.Request().Context(), queries.NewListMenusQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Menu, len(menus))
	for i, m := range menus {
		products := make([]servers.MenuProduct, len(m.MenuProducts))
		for j, mp := range m.MenuProducts {
			products[j] = servers.MenuProduct{
				Id:        mp.ID.Bytes(),
				ProductId: mp.ProductID.Bytes(),
				Quantity:  mp.Quantity,
			}
		}

		response[i] = servers.Menu{
			Id:           m.ID.Bytes(),
			Name:         m.Name,
			Price:        m.Price,
			MenuGroupId:  m.MenuGroupID.Bytes(),
			MenuProducts: products,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body servers.CreateMenuJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	groupID, err := toKernelUUID(body.MenuGroupId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	inputs := make([]commands.MenuProductInput, 0, len(body.MenuProducts))
	for _, mp := range body.MenuProducts {
		productID, idErr := toKernelUUID(mp.ProductId)
		if idErr != nil {
			return s.respondError(ctx, idErr)
		}
		inputs = append(inputs, commands.MenuProductInput{ProductID: productID, Quantity: mp.Quantity})
	}

	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), body.Name, body.Price, groupID, inputs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	products := make([]servers.MenuProduct, 0, len(created.Products()))
	for _, mp := range created.Products() {
		products = append(products, servers.MenuProduct{
			Id:        mp.ID().Bytes(),
			ProductId: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity().Value(),
		})
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/menus/"+created.ID().String())
	return ctx.JSON(http.StatusCreated, servers.Menu{
		Id:           created.ID().Bytes(),
		Name:         created.Name(),
		Price:        created.Price().Amount(),
		MenuGroupId:  created.MenuGroupID().Bytes(),
		MenuProducts: products,
	})
}

// ListTables handles GET /api/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	tables, err := s.listTablesHandler.Handle(ctx.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.OrderTable, len(tables))
	for i, t := range tables {
		var groupID *openapi_types.UUID
		if t.TableGroupID != nil {
			raw := t.TableGroupID.Bytes()
			groupID = &raw
		}

		response[i] = servers.OrderTable{
			Id:             t.ID.Bytes(),
			TableGroupId:   groupID,
			NumberOfGuests: t.NumberOfGuests,
			Empty:          t.Empty,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var body servers.CreateTableJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), body.NumberOfGuests, body.Empty)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createTableHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/tables/"+created.ID().String())
	return ctx.JSON(http.StatusCreated, tableResponse(created))
}

// ChangeTableEmpty handles PUT /api/tables/{orderTableId}/empty.
func (s *Server) ChangeTableEmpty(ctx echo.Context, orderTableId servers.OrderTableId) error {
	var body servers.ChangeTableEmptyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	tableID, err := toKernelUUID(orderTableId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeTableEmptyCommand(tableID, body.Empty)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changed, err := s.changeTableEmptyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponse(changed))
}

// ChangeTableGuestNumber handles PUT /api/tables/{orderTableId}/number-of-guests.
func (s *Server) ChangeTableGuestNumber(ctx echo.Context, orderTableId servers.OrderTableId) error {
	var body servers.ChangeTableGuestNumberJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	tableID, err := toKernelUUID(orderTableId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeTableGuestNumberCommand(tableID, body.NumberOfGuests)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changed, err := s.changeTableGuestNumberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableResponse(changed))
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		items := make([]servers.OrderLineItem, len(o.OrderLineItems))
		for j, li := range o.OrderLineItems {
			items[j] = servers.OrderLineItem{
				Id:       li.ID.Bytes(),
				MenuId:   li.MenuID.Bytes(),
				Quantity: li.Quantity,
			}
		}

		response[i] = servers.Order{
			Id:             o.ID.Bytes(),
			OrderTableId:   o.OrderTableID.Bytes(),
			OrderStatus:    servers.OrderOrderStatus(o.OrderStatus),
			OrderedTime:    o.OrderedTime.UTC(),
			OrderLineItems: items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	tableID, err := toKernelUUID(body.OrderTableId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	inputs := make([]commands.OrderLineItemInput, 0, len(body.OrderLineItems))
	for _, li := range body.OrderLineItems {
		menuID, idErr := toKernelUUID(li.MenuId)
		if idErr != nil {
			return s.respondError(ctx, idErr)
		}
		inputs = append(inputs, commands.OrderLineItemInput{MenuID: menuID, Quantity: li.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tableID, inputs)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/orders/"+placed.ID().String())
	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// ChangeOrderStatus handles PUT /api/orders/{orderId}/order-status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.OrderStatus)
	if err != nil {
		return s.respondError(ctx, err)
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(changed))
}

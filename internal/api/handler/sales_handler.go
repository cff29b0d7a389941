package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// SalesHandler serves admin management of clients and orders.
type SalesHandler struct {
	sales ports.SalesService
}

func NewSalesHandler(sales ports.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// ListClients
//
// @Summary      List clients
// @Tags         admin-sales
// @Produce      json
// @Success      200  {object}  clientList
// @Router       /api/admin/clients [get]
func (h *SalesHandler) ListClients(c echo.Context) error {
	clients, err := h.sales.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientList{Clients: clients})
}

// GetClient
//
// @Summary      Get client
// @Tags         admin-sales
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorBody
// @Router       /api/admin/clients/{id} [get]
func (h *SalesHandler) GetClient(c echo.Context) error {
	client, err := h.sales.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClient fails with 409 when the agreement number is taken.
//
// @Summary      Create client
// @Tags         admin-sales
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/admin/clients [post]
func (h *SalesHandler) CreateClient(c echo.Context) error {
	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	client, err := h.sales.CreateClient(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient
//
// @Summary      Update client
// @Tags         admin-sales
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/admin/clients/{id} [put]
func (h *SalesHandler) UpdateClient(c echo.Context) error {
	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	client, err := h.sales.UpdateClient(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient
//
// @Summary      Delete client
// @Tags         admin-sales
// @Param        id   path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/admin/clients/{id} [delete]
func (h *SalesHandler) DeleteClient(c echo.Context) error {
	if err := h.sales.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrders
//
// @Summary      List orders
// @Tags         admin-sales
// @Produce      json
// @Param        status  query     string  false  "pending, delivered or cancelled"
// @Success      200     {object}  orderList
// @Router       /api/admin/orders [get]
func (h *SalesHandler) ListOrders(c echo.Context) error {
	orders, err := h.sales.ListOrders(c.Request().Context(), domain.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderList{Orders: orders})
}

// GetOrder
//
// @Summary      Get order
// @Tags         admin-sales
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorBody
// @Router       /api/admin/orders/{id} [get]
func (h *SalesHandler) GetOrder(c echo.Context) error {
	order, err := h.sales.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// CreateOrder requires the referenced client and car to exist.
//
// @Summary      Create order
// @Tags         admin-sales
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/orders [post]
func (h *SalesHandler) CreateOrder(c echo.Context) error {
	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	order, err := h.sales.CreateOrder(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// UpdateOrder marks the car sold when the order becomes delivered.
//
// @Summary      Update order
// @Tags         admin-sales
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Order id"
// @Param        body  body      orderRequest  true  "Order"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Router       /api/admin/orders/{id} [put]
func (h *SalesHandler) UpdateOrder(c echo.Context) error {
	var req orderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	order, err := h.sales.UpdateOrder(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// DeleteOrder
//
// @Summary      Delete order
// @Tags         admin-sales
// @Param        id   path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/admin/orders/{id} [delete]
func (h *SalesHandler) DeleteOrder(c echo.Context) error {
	if err := h.sales.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

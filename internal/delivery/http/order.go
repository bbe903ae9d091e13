package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"orders-api/internal/service"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid "+name+" param")
		return 0, false
	}
	return uint(id), true
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, service.ErrTaskNotFound):
		newErrorResponse(c, http.StatusNotFound, "Task not found for this order")
	case errors.Is(err, service.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// CreateOrder
// @Summary CreateOrder
// @Description Creates an order with optional order lines for the authenticated user
// @Security ApiKeyAuth
// @ID create-order
// @Accept json
// @Produce json
// @Param input body service.CreateOrderInput true "order payload"
// @Success 201 {object} orderResponse
// @Failure 400,401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var in service.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := h.orders.CreateOrder(userID, in)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(ord))
}

// GetAllOrders
// @Summary GetAllOrders
// @Description Lists every order owned by the authenticated user
// @Security ApiKeyAuth
// @ID get-all-orders
// @Produce json
// @Success 200 {array} orderResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	orders, err := h.orders.GetAllOrders(userID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrderById
// @Summary GetOrderById
// @Description Returns one order; a foreign or unknown id is indistinguishable, both 404
// @Security ApiKeyAuth
// @ID get-order-by-id
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} orderResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrderById(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orders.GetOrder(userID, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// UpdateOrder
// @Summary UpdateOrder
// @Description Partially updates an order; an orderLines key replaces all lines
// @Security ApiKeyAuth
// @ID update-order
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body service.UpdateOrderInput true "partial order payload"
// @Success 200 {object} orderResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id} [put]
func (h *Handler) UpdateOrder(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in service.UpdateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := h.orders.UpdateOrder(userID, orderID, in)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(ord))
}

// DeleteOrder
// @Summary DeleteOrder
// @Description Deletes an order together with its lines and tasks
// @Security ApiKeyAuth
// @ID delete-order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} statusResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(userID, orderID); err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "Order deleted"})
}

type updateStatusInput struct {
	Status string `json:"status"`
}

// UpdateOrderStatus
// @Summary UpdateOrderStatus
// @Description Sets the order status; the value must belong to the closed status set
// @Security ApiKeyAuth
// @ID update-order-status
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body updateStatusInput true "new status"
// @Success 200 {object} orderResponse
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{id}/status [patch]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	userID, err := getUserId(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var in updateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Status == "" {
		newErrorResponse(c, http.StatusBadRequest, "Status required")
		return
	}

	ord, err := h.orders.UpdateOrderStatus(userID, orderID, in.Status)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(ord))
}

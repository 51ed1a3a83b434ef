package handlers

import (
	"errors"
	"io"
	"net/http"

	response "sien_official/internal/adapter/http/dto/response"
	"sien_official/internal/adapter/http/middleware"
	"sien_official/internal/usecase"
	"sien_official/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errOrderIntake = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal Server Error", http.StatusInternalServerError)

// OrderHandler accepts commission requests from the public order form.
type OrderHandler struct {
	orders    usecase.IOrderUseCase
	onCreated func()
}

// NewOrderHandler builds the intake handler. onCreated may be nil.
func NewOrderHandler(orders usecase.IOrderUseCase, onCreated func()) *OrderHandler {
	return &OrderHandler{orders: orders, onCreated: onCreated}
}

// Create godoc
// @Summary      Submit an order
// @Description  Stores the form fields as a new order and notifies the studio by mail. Fields are not validated.
// @Tags         order
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "order form fields"
// @Success      200   {object}  response.OrderCreatedResponse
// @Failure      500   {object}  pkg.HTTPError
// @Router       /api/order [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		middleware.Logger(c).Warn("order form decode failed", zap.Error(err))
		writeError(c, errOrderIntake)
		return
	}

	o, err := h.orders.Create(c.Request.Context(), fields)
	if err != nil {
		middleware.Logger(c).Error("order create failed", zap.Error(err))
		writeError(c, errOrderIntake)
		return
	}
	if h.onCreated != nil {
		h.onCreated()
	}

	middleware.Logger(c).Info("order received", zap.String("order_id", o.ID))
	c.JSON(http.StatusOK, response.OrderCreatedResponse{Success: true, Message: "Order received", OrderID: o.ID})
}

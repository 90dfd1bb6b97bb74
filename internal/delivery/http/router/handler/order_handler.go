package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUc usecase.OrderUsecase
	userUc  usecase.UserUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUc usecase.OrderUsecase, userUc usecase.UserUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUc: orderUc,
		userUc:  userUc,
		logger:  logger,
	}
}

type placeOrderRequest struct {
	DeliveryAddress string                  `json:"delivery_address" validate:"required"`
	Items           []placeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type placeOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// Place handles the order placement request for the authenticated customer.
func (h *OrderHandler) Place(c echo.Context) error {
	customerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	// The confirmation mail goes to the account's address, so read it from
	// the profile rather than trusting the payload.
	customer, err := h.userUc.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		CustomerID:      customerID,
		CustomerEmail:   customer.Email,
		RequestID:       deliverycontext.GetRequestID(c),
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Get handles the single-order lookup for the authenticated customer.
func (h *OrderHandler) Get(c echo.Context) error {
	customerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.orderUc.GetOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

package http

import (
	"errors"
	"net/http"
	"time"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/domain/model/order"

	"quickbite/internal/pkg/errs"
)

// Wire error kinds. Every external-facing failure names one of these so
// clients can branch without parsing messages.
const (
	kindItemNotFound           = "item_not_found"
	kindItemUnavailable        = "item_unavailable"
	kindInvalidQuantity        = "invalid_quantity"
	kindMissingDeliveryDetails = "missing_delivery_details"
	kindOrderNotFound          = "order_not_found"
	kindValidationFailed       = "validation_failed"
	kindInternal               = "internal_error"
)

// CreateOrderRequest is the inbound payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	Items           []CreateOrderItem      `json:"items"`
	DeliveryDetails DeliveryDetailsPayload `json:"deliveryDetails"`
}

// CreateOrderItem is one requested order position.
type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// DeliveryDetailsPayload carries recipient information on the wire.
type DeliveryDetailsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateOrderStatusRequest is the inbound payload of
// PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the full order snapshot serialized to clients, both in
// REST responses and as SSE event payloads.
type OrderResponse struct {
	ID              string                 `json:"id"`
	Items           []OrderItemResponse    `json:"items"`
	DeliveryDetails DeliveryDetailsPayload `json:"deliveryDetails"`
	Status          string                 `json:"status"`
	TotalAmount     float64                `json:"totalAmount"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// OrderItemResponse is one order position with its snapshotted name and
// unit price.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// MenuItemResponse is one catalog entry.
type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// Pagination is the paging metadata returned alongside menu listings.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DataResponse is the success envelope.
type DataResponse struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// toOrderResponse maps a domain order snapshot to its wire representation.
func toOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	wireItems := make([]OrderItemResponse, len(items))
	for i, li := range items {
		wireItems[i] = OrderItemResponse{
			MenuItemID: li.MenuItemID(),
			Name:       li.Name(),
			Price:      li.Price(),
			Quantity:   li.Quantity(),
		}
	}

	details := o.DeliveryDetails()
	return OrderResponse{
		ID:    o.ID().String(),
		Items: wireItems,
		DeliveryDetails: DeliveryDetailsPayload{
			Name:    details.Name(),
			Address: details.Address(),
			Phone:   details.Phone(),
		},
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// toMenuItemResponse maps a catalog item to its wire representation.
func toMenuItemResponse(item menu.Item) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
		Available:   item.Available,
	}
}

// classifyError maps a failure from the core to an HTTP status and a wire
// error kind. Classification goes through errors.Is, never message text.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		return http.StatusBadRequest, kindItemNotFound
	case errors.Is(err, menu.ErrItemUnavailable):
		return http.StatusBadRequest, kindItemUnavailable
	case errors.Is(err, commands.ErrInvalidQuantity):
		return http.StatusBadRequest, kindInvalidQuantity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindOrderNotFound
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, kindMissingDeliveryDetails
	case errors.Is(err, commands.ErrNoItemsSelected),
		errors.Is(err, commands.ErrMenuItemIDIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, kindValidationFailed
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

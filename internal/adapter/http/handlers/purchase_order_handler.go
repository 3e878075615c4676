package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/request"
	response "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/response"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/pkg"
)

var errInvalidPOPayload = pkg.NewDomainErrorSimple("INVALID_PO_INPUT", "Invalid purchase order payload", http.StatusBadRequest)

// PurchaseOrderHandler handles HTTP requests for purchase orders.

type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

// CreatePurchaseOrder godoc
// @Summary  Issue a purchase order against an active LOA
// @Tags     purchase-orders
// @Accept   json
// @Produce  json
// @Param    order body request.CreatePORequest true "purchase order"
// @Success  201 {object} response.POResponse
// @Router   /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var payload request.CreatePORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPOPayload.HTTPStatus, errInvalidPOPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.Create(c.Request.Context(), usecase.CreatePOInput{
		PONumber: payload.PONumber,
		LOAID:    payload.LOAID,
		VendorID: payload.VendorID,
		Amount:   payload.Amount,
	})
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPurchaseOrder(po))
}

func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	po, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	filter := poFilterFromQuery(c)
	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.usecase.Count(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromPurchaseOrders(orders))
}

func (h *PurchaseOrderHandler) ListPurchaseOrderTransitions(c *gin.Context) {
	next, err := h.usecase.ListLegalTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitions(next))
}

// UpdatePurchaseOrderStatus godoc
// @Summary  Apply a status transition to a purchase order
// @Tags     purchase-orders
// @Accept   json
// @Produce  json
// @Param    id     path string                    true "purchase order id"
// @Param    change body request.TransitionRequest true "transition"
// @Success  200 {object} response.POResponse
// @Router   /purchase-orders/{id}/status [patch]
func (h *PurchaseOrderHandler) UpdatePurchaseOrderStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPOPayload.HTTPStatus, errInvalidPOPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.ApplyTransition(c.Request.Context(), usecase.TransitionInput{
		ID:          c.Param("id"),
		Target:      payload.ResolveStatus(),
		Remarks:     payload.Remarks,
		DocumentRef: payload.DocumentRef,
		ActorID:     payload.ActorID,
	})
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

func (h *PurchaseOrderHandler) PurchaseOrderStatistics(c *gin.Context) {
	stats, err := h.usecase.Statistics(c.Request.Context(), poFilterFromQuery(c))
	if err != nil {
		appErr := mapPOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}

func poFilterFromQuery(c *gin.Context) entities.POFilter {
	return entities.POFilter{
		Status:      entities.POStatus(c.Query("status")),
		LOAID:       c.Query("loa_id"),
		VendorID:    c.Query("vendor_id"),
		CreatedFrom: timeQuery(c, "from"),
		CreatedTo:   timeQuery(c, "to"),
		Search:      c.Query("search"),
	}
}

func mapPOError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPOID),
		errors.Is(err, usecase.ErrInvalidPOInput),
		errors.Is(err, usecase.ErrInvalidPOAmount),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLOANotFound):
		return pkg.NewDomainErrorSimple("LOA_NOT_FOUND", "LOA not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLOANotActive):
		return pkg.NewDomainErrorSimple("LOA_NOT_ACTIVE", "Purchase orders can only be issued against an active LOA", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

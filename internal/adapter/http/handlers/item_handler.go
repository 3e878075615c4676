package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/request"
	response "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/response"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/pkg"
)

var errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)

type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

// CreateItem godoc
// @Summary  Register an item
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    item body request.ItemRequest true "item"
// @Success  201 {object} response.ItemResponse
// @Router   /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), itemInput(payload))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(item))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), itemInput(payload))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func itemInput(payload request.ItemRequest) usecase.CreateItemInput {
	return usecase.CreateItemInput{
		Name:        payload.Name,
		Description: payload.Description,
		UnitPrice:   payload.UnitPrice,
		UOM:         payload.UOM,
		HSNCode:     payload.HSNCode,
	}
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemInput),
		errors.Is(err, usecase.ErrInvalidItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

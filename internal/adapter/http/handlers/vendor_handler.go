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

var errInvalidVendorPayload = pkg.NewDomainErrorSimple("INVALID_VENDOR_INPUT", "Invalid vendor payload", http.StatusBadRequest)

type VendorHandler struct {
	usecase usecase.IVendorUseCase
}

func NewVendorHandler(uc usecase.IVendorUseCase) *VendorHandler {
	return &VendorHandler{usecase: uc}
}

// CreateVendor godoc
// @Summary  Register a vendor
// @Tags     vendors
// @Accept   json
// @Produce  json
// @Param    vendor body request.VendorRequest true "vendor"
// @Success  201 {object} response.VendorResponse
// @Router   /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var payload request.VendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	vendor, err := h.usecase.Create(c.Request.Context(), vendorInput(payload))
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVendor(vendor))
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendor(vendor))
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendors(vendors))
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	var payload request.VendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	vendor, err := h.usecase.Update(c.Request.Context(), c.Param("id"), vendorInput(payload))
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendor(vendor))
}

func vendorInput(payload request.VendorRequest) usecase.CreateVendorInput {
	return usecase.CreateVendorInput{
		Name:      payload.Name,
		Email:     payload.Email,
		Mobile:    payload.Mobile,
		GSTNumber: payload.GSTNumber,
		Address:   payload.Address,
	}
}

func mapVendorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVendorID),
		errors.Is(err, usecase.ErrInvalidVendorInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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

var errInvalidLOAPayload = pkg.NewDomainErrorSimple("INVALID_LOA_INPUT", "Invalid LOA payload", http.StatusBadRequest)

// LOAHandler handles HTTP requests for letters of acceptance.

type LOAHandler struct {
	usecase usecase.ILOAUseCase
}

func NewLOAHandler(uc usecase.ILOAUseCase) *LOAHandler {
	return &LOAHandler{usecase: uc}
}

// CreateLOA godoc
// @Summary  Create a letter of acceptance
// @Tags     loas
// @Accept   json
// @Produce  json
// @Param    loa body request.CreateLOARequest true "loa"
// @Success  201 {object} response.LOAResponse
// @Router   /loas [post]
func (h *LOAHandler) CreateLOA(c *gin.Context) {
	var payload request.CreateLOARequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLOAPayload.HTTPStatus, errInvalidLOAPayload.ToHTTPError())
		return
	}

	loa, err := h.usecase.Create(c.Request.Context(), usecase.CreateLOAInput{
		LOANumber:       payload.LOANumber,
		VendorID:        payload.VendorID,
		WorkDescription: payload.WorkDescription,
		Amount:          payload.Amount,
	})
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLOA(loa))
}

func (h *LOAHandler) GetLOA(c *gin.Context) {
	loa, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLOA(loa))
}

func (h *LOAHandler) ListLOAs(c *gin.Context) {
	filter := loaFilterFromQuery(c)
	loas, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.usecase.Count(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromLOAs(loas))
}

func (h *LOAHandler) ListLOATransitions(c *gin.Context) {
	next, err := h.usecase.ListLegalTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitions(next))
}

// UpdateLOAStatus godoc
// @Summary  Apply a status transition to a letter of acceptance
// @Tags     loas
// @Accept   json
// @Produce  json
// @Param    id     path string                    true "loa id"
// @Param    change body request.TransitionRequest true "transition"
// @Success  200 {object} response.LOAResponse
// @Router   /loas/{id}/status [patch]
func (h *LOAHandler) UpdateLOAStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLOAPayload.HTTPStatus, errInvalidLOAPayload.ToHTTPError())
		return
	}

	loa, err := h.usecase.ApplyTransition(c.Request.Context(), usecase.TransitionInput{
		ID:          c.Param("id"),
		Target:      payload.ResolveStatus(),
		Remarks:     payload.Remarks,
		DocumentRef: payload.DocumentRef,
		ActorID:     payload.ActorID,
	})
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLOA(loa))
}

func (h *LOAHandler) LOAStatistics(c *gin.Context) {
	stats, err := h.usecase.Statistics(c.Request.Context(), loaFilterFromQuery(c))
	if err != nil {
		appErr := mapLOAError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}

func loaFilterFromQuery(c *gin.Context) entities.LOAFilter {
	return entities.LOAFilter{
		Status:      entities.LOAStatus(c.Query("status")),
		VendorID:    c.Query("vendor_id"),
		CreatedFrom: timeQuery(c, "from"),
		CreatedTo:   timeQuery(c, "to"),
		Search:      c.Query("search"),
	}
}

func mapLOAError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLOAID),
		errors.Is(err, usecase.ErrInvalidLOAInput),
		errors.Is(err, usecase.ErrInvalidLOAAmount),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLOANotFound):
		return pkg.NewDomainErrorSimple("LOA_NOT_FOUND", "LOA not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

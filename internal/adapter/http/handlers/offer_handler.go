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

var errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)

// OfferHandler handles HTTP requests for budgetary offers.

type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

// CreateOffer godoc
// @Summary  Create a budgetary offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer body request.CreateOfferRequest true "offer"
// @Success  201 {object} response.OfferResponse
// @Router   /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.Create(c.Request.Context(), usecase.CreateOfferInput{
		Subject:         payload.Subject,
		ToAuthority:     payload.ToAuthority,
		WorkDescription: payload.WorkDescription,
		Amount:          payload.Amount,
	})
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) ListOffers(c *gin.Context) {
	filter := offerFilterFromQuery(c)
	offers, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.usecase.Count(c.Request.Context(), filter)
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

func (h *OfferHandler) ListOfferTransitions(c *gin.Context) {
	next, err := h.usecase.ListLegalTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitions(next))
}

// UpdateOfferStatus godoc
// @Summary  Apply a status transition to a budgetary offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    id     path string                    true "offer id"
// @Param    change body request.TransitionRequest true "transition"
// @Success  200 {object} response.OfferResponse
// @Router   /offers/{id}/status [patch]
func (h *OfferHandler) UpdateOfferStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.usecase.ApplyTransition(c.Request.Context(), usecase.TransitionInput{
		ID:          c.Param("id"),
		Target:      payload.ResolveStatus(),
		Remarks:     payload.Remarks,
		DocumentRef: payload.DocumentRef,
		ActorID:     payload.ActorID,
	})
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) OfferStatistics(c *gin.Context) {
	stats, err := h.usecase.Statistics(c.Request.Context(), offerFilterFromQuery(c))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}

func offerFilterFromQuery(c *gin.Context) entities.OfferFilter {
	return entities.OfferFilter{
		Status:      entities.OfferStatus(c.Query("status")),
		CreatedFrom: timeQuery(c, "from"),
		CreatedTo:   timeQuery(c, "to"),
		Search:      c.Query("search"),
	}
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfferID),
		errors.Is(err, usecase.ErrInvalidOfferInput),
		errors.Is(err, usecase.ErrInvalidOfferAmount),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Budgetary offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

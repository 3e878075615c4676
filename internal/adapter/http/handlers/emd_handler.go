package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/request"
	response "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/dto/response"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/infrastructure/extraction"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/pkg"
)

var errInvalidEMDPayload = pkg.NewDomainErrorSimple("INVALID_EMD_INPUT", "Invalid EMD payload", http.StatusBadRequest)

// EMDHandler handles HTTP requests for earnest-money deposits.

type EMDHandler struct {
	usecase usecase.IEMDUseCase
}

func NewEMDHandler(uc usecase.IEMDUseCase) *EMDHandler {
	return &EMDHandler{usecase: uc}
}

// CreateEMD godoc
// @Summary  Record an earnest-money deposit
// @Tags     emds
// @Accept   json
// @Produce  json
// @Param    emd body request.CreateEMDRequest true "emd"
// @Success  201 {object} response.EMDResponse
// @Router   /emds [post]
func (h *EMDHandler) CreateEMD(c *gin.Context) {
	var payload request.CreateEMDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEMDPayload.HTTPStatus, errInvalidEMDPayload.ToHTTPError())
		return
	}

	emd, err := h.usecase.Create(c.Request.Context(), usecase.CreateEMDInput{
		OfferID:      payload.OfferID,
		FDRNumber:    payload.FDRNumber,
		BankName:     payload.BankName,
		Amount:       payload.Amount,
		IssueDate:    payload.IssueDate,
		MaturityDate: payload.MaturityDate,
	})
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEMD(emd))
}

func (h *EMDHandler) GetEMD(c *gin.Context) {
	emd, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEMD(emd))
}

func (h *EMDHandler) ListEMDs(c *gin.Context) {
	filter := emdFilterFromQuery(c)
	views, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	total, err := h.usecase.Count(c.Request.Context(), filter)
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromEMDViews(views))
}

func (h *EMDHandler) ListEMDTransitions(c *gin.Context) {
	next, err := h.usecase.ListLegalTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitions(next))
}

// UpdateEMDStatus godoc
// @Summary  Apply a status transition to an earnest-money deposit
// @Tags     emds
// @Accept   json
// @Produce  json
// @Param    id     path string                    true "emd id"
// @Param    change body request.TransitionRequest true "transition"
// @Success  200 {object} response.EMDResponse
// @Router   /emds/{id}/status [patch]
func (h *EMDHandler) UpdateEMDStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEMDPayload.HTTPStatus, errInvalidEMDPayload.ToHTTPError())
		return
	}

	emd, err := h.usecase.ApplyTransition(c.Request.Context(), usecase.TransitionInput{
		ID:          c.Param("id"),
		Target:      payload.ResolveStatus(),
		Remarks:     payload.Remarks,
		DocumentRef: payload.DocumentRef,
		ActorID:     payload.ActorID,
	})
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEMD(emd))
}

// ListExpiringEMDs godoc
// @Summary  List deposits maturing inside the alert window
// @Tags     emds
// @Produce  json
// @Param    window_days query int false "alert window in days"
// @Success  200 {array} response.EMDResponse
// @Router   /emds/expiring [get]
func (h *EMDHandler) ListExpiringEMDs(c *gin.Context) {
	windowDays, _ := strconv.Atoi(c.Query("window_days"))

	views, err := h.usecase.ListExpiring(c.Request.Context(), windowDays)
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEMDViews(views))
}

// ExtractFDR godoc
// @Summary  Extract fixed-deposit receipt fields from OCR text
// @Tags     emds
// @Accept   json
// @Produce  json
// @Param    document body request.ExtractFDRRequest true "ocr text"
// @Success  200 {object} response.FDRDetailsResponse
// @Router   /emds/extract [post]
func (h *EMDHandler) ExtractFDR(c *gin.Context) {
	var payload request.ExtractFDRRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEMDPayload.HTTPStatus, errInvalidEMDPayload.ToHTTPError())
		return
	}

	details, err := h.usecase.ExtractFDRDetails(c.Request.Context(), payload.Text)
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFDRDetails(details))
}

func (h *EMDHandler) EMDStatistics(c *gin.Context) {
	stats, err := h.usecase.Statistics(c.Request.Context(), emdFilterFromQuery(c))
	if err != nil {
		appErr := mapEMDError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}

func emdFilterFromQuery(c *gin.Context) entities.EMDFilter {
	return entities.EMDFilter{
		Status:      entities.EMDStatus(c.Query("status")),
		OfferID:     c.Query("offer_id"),
		MaturedFrom: timeQuery(c, "matured_from"),
		MaturedTo:   timeQuery(c, "matured_to"),
		Search:      c.Query("search"),
	}
}

func mapEMDError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEMDID),
		errors.Is(err, usecase.ErrInvalidEMDInput),
		errors.Is(err, usecase.ErrInvalidEMDAmount),
		errors.Is(err, usecase.ErrEmptyExtractionText),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEMDNotFound):
		return pkg.NewDomainErrorSimple("EMD_NOT_FOUND", "EMD not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Budgetary offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrExtractorNotReady),
		errors.Is(err, extraction.ErrExtractorNotConfigured):
		return pkg.NewDomainErrorSimple("EXTRACTOR_UNAVAILABLE", "FDR extraction is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, extraction.ErrUnparsableModelResponse):
		return pkg.NewDomainErrorSimple("EXTRACTION_FAILED", "Could not extract FDR details from the document", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

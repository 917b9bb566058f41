package handlers

import (
	"errors"
	"net/http"

	"renomatch/internal/adapter/http/dto/request"
	"renomatch/internal/adapter/http/dto/response"
	"renomatch/internal/adapter/http/middleware"
	"renomatch/internal/usecase"
	"renomatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid quote request payload", http.StatusBadRequest)

// QuoteRequestHandler exposes the request status machine over HTTP. It never
// writes status itself; every mutation goes through the use case.

type QuoteRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// CreateRequest handles the customer submission that opens a request at
// "pending".
func (h *QuoteRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	dates, err := payload.ResolveVisitDates()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.Subject(c), usecase.NewRequestInput{
		SpaceType:    payload.SpaceType,
		BudgetBand:   payload.BudgetBand,
		TimelineBand: payload.TimelineBand,
		Address:      payload.Address,
		Description:  payload.Description,
		VisitDates:   dates,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

func (h *QuoteRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func (h *QuoteRequestHandler) ListMyRequests(c *gin.Context) {
	requests, err := h.usecase.ListByCustomer(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(requests))
}

// ReviewRequest applies the staff verdict: approval opens site visits in the
// same transition, rejection is terminal.
func (h *QuoteRequestHandler) ReviewRequest(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Review(c.Request.Context(), c.Param("request_id"), *payload.Approve)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func (h *QuoteRequestHandler) OpenBidding(c *gin.Context) {
	r, err := h.usecase.OpenBidding(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func (h *QuoteRequestHandler) CloseBidding(c *gin.Context) {
	r, err := h.usecase.CloseBidding(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func (h *QuoteRequestHandler) CancelRequest(c *gin.Context) {
	r, err := h.usecase.Cancel(c.Request.Context(), c.Param("request_id"), middleware.Subject(c))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidRequestInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestTerminal):
		return pkg.NewDomainErrorSimple("REQUEST_TERMINAL", "Quote request is in a terminal state", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Illegal status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrCorruptRequestStatus):
		return pkg.NewDomainError("CORRUPT_STATUS", "Stored request status is not recognized", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

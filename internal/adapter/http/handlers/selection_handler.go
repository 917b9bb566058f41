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

var errInvalidSelectionPayload = pkg.NewDomainErrorSimple("INVALID_SELECTION_INPUT", "Invalid selection payload", http.StatusBadRequest)

// SelectionHandler exposes the pick-one-contractor operation over HTTP.

type SelectionHandler struct {
	usecase usecase.ISelectionUseCase
}

func NewSelectionHandler(uc usecase.ISelectionUseCase) *SelectionHandler {
	return &SelectionHandler{usecase: uc}
}

func (h *SelectionHandler) SelectContractor(c *gin.Context) {
	var payload request.SelectContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelectionPayload.HTTPStatus, errInvalidSelectionPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.SelectContractor(c.Request.Context(), c.Param("request_id"), payload.ContractorID, payload.QuoteID, middleware.Subject(c))
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(r))
}

func mapSelectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidContractorID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewDomainErrorSimple("SELECTION_ALREADY_DECIDED", "A contractor has already been selected for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteMismatch):
		return pkg.NewDomainErrorSimple("QUOTE_MISMATCH", "Quote does not belong to this request and contractor", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestTerminal):
		return pkg.NewDomainErrorSimple("REQUEST_TERMINAL", "Quote request is cancelled or rejected", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelectionNotOpen):
		return pkg.NewDomainErrorSimple("SELECTION_NOT_OPEN", "Quote request is not open for selection", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

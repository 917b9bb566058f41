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

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)

// BidHandler exposes the bid ledger over HTTP.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.Submit(c.Request.Context(), c.Param("request_id"), middleware.Subject(c), payload.Price, payload.Description, payload.DocumentRef)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBid(bid))
}

func (h *BidHandler) WithdrawBid(c *gin.Context) {
	if err := h.usecase.Withdraw(c.Request.Context(), c.Param("bid_id"), middleware.Subject(c)); err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BidHandler) ListBidsByRequest(c *gin.Context) {
	bids, err := h.usecase.ListByRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBids(bids))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidContractorID),
		errors.Is(err, usecase.ErrInvalidBidID), errors.Is(err, usecase.ErrInvalidBidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidNotEligible):
		return pkg.NewDomainErrorSimple("BID_NOT_ELIGIBLE", "A completed site visit is required before bidding", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRequestClosed):
		return pkg.NewDomainErrorSimple("REQUEST_CLOSED", "Request is not accepting bids", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicateBid):
		return pkg.NewDomainErrorSimple("DUPLICATE_BID", "A bid already exists for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotBidOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not own this bid", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSelectionAlreadyMade):
		return pkg.NewDomainErrorSimple("TOO_LATE", "Request has already been decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorInactive):
		return pkg.NewDomainErrorSimple("CONTRACTOR_INACTIVE", "Contractor is not active", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

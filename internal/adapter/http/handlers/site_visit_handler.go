package handlers

import (
	"errors"
	"net/http"

	"renomatch/internal/adapter/http/dto/response"
	"renomatch/internal/adapter/http/middleware"
	"renomatch/internal/usecase"
	"renomatch/pkg"

	"github.com/gin-gonic/gin"
)

// SiteVisitHandler exposes the site visit coordinator over HTTP.

type SiteVisitHandler struct {
	usecase usecase.ISiteVisitUseCase
}

func NewSiteVisitHandler(uc usecase.ISiteVisitUseCase) *SiteVisitHandler {
	return &SiteVisitHandler{usecase: uc}
}

// ApplyForVisit registers the authenticated contractor's intent to inspect
// the request's site. No body: the pair is fully determined by the path and
// the token.
func (h *SiteVisitHandler) ApplyForVisit(c *gin.Context) {
	app, err := h.usecase.Apply(c.Request.Context(), c.Param("request_id"), middleware.Subject(c))
	if err != nil {
		appErr := mapSiteVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSiteVisit(app))
}

func (h *SiteVisitHandler) CancelVisit(c *gin.Context) {
	app, err := h.usecase.Cancel(c.Request.Context(), c.Param("application_id"), middleware.Subject(c), middleware.IsStaff(c))
	if err != nil {
		appErr := mapSiteVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSiteVisit(app))
}

// CompleteVisit records the external fact that the physical inspection
// happened. Staff only.
func (h *SiteVisitHandler) CompleteVisit(c *gin.Context) {
	app, err := h.usecase.MarkCompleted(c.Request.Context(), c.Param("application_id"))
	if err != nil {
		appErr := mapSiteVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSiteVisit(app))
}

func (h *SiteVisitHandler) ListVisitsByRequest(c *gin.Context) {
	apps, err := h.usecase.ListByRequest(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapSiteVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSiteVisits(apps))
}

func mapSiteVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidContractorID), errors.Is(err, usecase.ErrInvalidApplicationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitConflict):
		return pkg.NewDomainErrorSimple("VISIT_CONFLICT", "An active site visit application already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrVisitNotEligible):
		return pkg.NewDomainErrorSimple("VISIT_NOT_ELIGIBLE", "Request is not accepting site visits", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Site visit application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVisitAlreadyCancelled):
		return pkg.NewDomainErrorSimple("VISIT_ALREADY_CANCELLED", "Site visit application already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrVisitAlreadyCompleted):
		return pkg.NewDomainErrorSimple("VISIT_ALREADY_COMPLETED", "Site visit application already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotVisitOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not own this application", http.StatusForbidden)
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

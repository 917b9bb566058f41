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

// DashboardHandler serves the contractor's projected view. The viewer is
// always the token subject; contractors cannot project each other.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) ListProjects(c *gin.Context) {
	projections, err := h.usecase.ListForContractor(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjections(projections))
}

func (h *DashboardHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.ProjectForContractor(c.Request.Context(), c.Param("request_id"), middleware.Subject(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjection(p))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

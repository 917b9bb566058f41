package handlers

import (
	"errors"
	"net/http"

	"renomatch/internal/adapter/http/dto/request"
	"renomatch/internal/adapter/http/dto/response"
	"renomatch/internal/usecase"
	"renomatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractorPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACTOR_INPUT", "Invalid contractor payload", http.StatusBadRequest)

type ContractorHandler struct {
	usecase usecase.IContractorUseCase
}

func NewContractorHandler(uc usecase.IContractorUseCase) *ContractorHandler {
	return &ContractorHandler{usecase: uc}
}

func (h *ContractorHandler) RegisterContractor(c *gin.Context) {
	var payload request.RegisterContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractorPayload.HTTPStatus, errInvalidContractorPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.BusinessName, payload.Email, payload.PushToken)
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContractor(created))
}

func (h *ContractorHandler) GetContractor(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(found))
}

// ActivateContractor flips the vetting gate. Staff only.
func (h *ContractorHandler) ActivateContractor(c *gin.Context) {
	var payload request.SetContractorActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractorPayload.HTTPStatus, errInvalidContractorPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetActive(c.Request.Context(), c.Param("contractor_id"), *payload.Active)
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(updated))
}

func mapContractorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractorID), errors.Is(err, usecase.ErrInvalidContractorInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "sumee_intake/internal/adapter/http/dto/request"
	response "sumee_intake/internal/adapter/http/dto/response"
	"sumee_intake/internal/usecase"
	"sumee_intake/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// LeadHandler handles the lead intake pipeline and its lifecycle endpoints.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
//
//	@Summary	Create a lead
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		lead	body		request.CreateLeadRequest	true	"Lead intake payload"
//	@Success	201		{object}	response.LeadResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.CreateLead(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// GetLead godoc
//
//	@Summary	Get a lead by id
//	@Tags		leads
//	@Produce	json
//	@Param		id	path		string	true	"Lead id"
//	@Success	200	{object}	response.LeadResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// MarkContacted godoc
//
//	@Summary	Mark a lead as contacted
//	@Tags		leads
//	@Produce	json
//	@Param		id	path		string	true	"Lead id"
//	@Success	200	{object}	response.LeadResponse
//	@Failure	409	{object}	pkg.HTTPError
//	@Router		/v1/leads/{id}/contact [patch]
func (h *LeadHandler) MarkContacted(c *gin.Context) {
	lead, err := h.usecase.MarkContacted(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// AssignProfessional godoc
//
//	@Summary	Assign a professional to a lead
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Lead id"
//	@Param		body	body		request.AssignProfessionalRequest	true	"Assignment payload"
//	@Success	200		{object}	response.LeadResponse
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/v1/leads/{id}/assign [patch]
func (h *LeadHandler) AssignProfessional(c *gin.Context) {
	var payload request.AssignProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.AssignProfessional(c.Request.Context(), c.Param("id"), payload.ProfessionalID)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// AllowedWindow godoc
//
//	@Summary	Price window the authenticated provider may agree within
//	@Tags		leads
//	@Produce	json
//	@Param		id	path		string	true	"Lead id"
//	@Success	200	{object}	response.AllowedWindowResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/leads/{id}/allowed-window [get]
func (h *LeadHandler) AllowedWindow(c *gin.Context) {
	window, err := h.usecase.AllowedWindowForProvider(c.Request.Context(), c.Param("id"), CallerID(c))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWindow(window))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Lead is not in a valid state for this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Lead was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "sumee_intake/internal/adapter/http/dto/request"
	response "sumee_intake/internal/adapter/http/dto/response"
	"sumee_intake/internal/domain/pricing"
	"sumee_intake/internal/usecase"
	"sumee_intake/pkg"

	"github.com/gin-gonic/gin"
)

// callerIDKey is the gin context key the auth middleware stores the
// authenticated provider id under.
const callerIDKey = "caller_id"

var (
	errInvalidNegotiationPayload = pkg.NewDomainErrorSimple("INVALID_NEGOTIATION_INPUT", "Invalid negotiation payload", http.StatusBadRequest)
)

// CallerID returns the authenticated provider id set by the auth middleware,
// empty when the route is unauthenticated.
func CallerID(c *gin.Context) string {
	return c.GetString(callerIDKey)
}

// SetCallerID stores the authenticated provider id for downstream handlers.
func SetCallerID(c *gin.Context, id string) {
	c.Set(callerIDKey, id)
}

// NegotiationHandler handles the two terminal negotiation transitions.

type NegotiationHandler struct {
	usecase usecase.INegotiationUseCase
}

func NewNegotiationHandler(uc usecase.INegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// ConfirmAgreement godoc
//
//	@Summary	Confirm a single-price agreement
//	@Tags		negotiation
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Lead id"
//	@Param		body	body		request.ConfirmAgreementRequest	true	"Agreement payload"
//	@Success	200		{object}	response.LeadResponse
//	@Failure	403		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Failure	422		{object}	pkg.HTTPError
//	@Router		/v1/leads/{id}/agreement [post]
func (h *NegotiationHandler) ConfirmAgreement(c *gin.Context) {
	var payload request.ConfirmAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.ConfirmAgreement(c.Request.Context(), c.Param("id"), CallerID(c), payload.PrecioAcordado, payload.AlcanceAcordado)
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// SendQuote godoc
//
//	@Summary	Send an itemized quote
//	@Tags		negotiation
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Lead id"
//	@Param		body	body		request.SendQuoteRequest	true	"Quote payload"
//	@Success	200		{object}	response.LeadResponse
//	@Failure	403		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Failure	422		{object}	pkg.HTTPError
//	@Router		/v1/leads/{id}/quote [post]
func (h *NegotiationHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNegotiationPayload.HTTPStatus, errInvalidNegotiationPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.SendQuote(c.Request.Context(), c.Param("id"), CallerID(c), payload.ToItems())
	if err != nil {
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNED", "Caller is not the assigned professional", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Negotiation is not in a valid state for this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Lead was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrScopeTooShort):
		return pkg.NewDomainErrorSimple("SCOPE_TOO_SHORT", "Agreed scope is too short", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceOutOfBounds):
		return pkg.NewDomainErrorSimple("PRICE_OUT_OF_BOUNDS", "Price is outside the allowed window", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrInvalidQuoteItem):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_ITEM", "One or more quote items are invalid", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

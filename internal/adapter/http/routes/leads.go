package routes

import (
	"github.com/gin-gonic/gin"

	"sumee_intake/internal/adapter/http/handlers"
)

const (
	PathLeads = "/leads"
)

func addLeadRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	negotiationHandler *handlers.NegotiationHandler,
	requireAuth gin.HandlerFunc,
) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/contact", leadHandler.MarkContacted)
		leads.PATCH("/:id/assign", leadHandler.AssignProfessional)
	}

	// Provider-only endpoints; the middleware resolves the caller id.
	provider := rg.Group(PathLeads, requireAuth)
	{
		provider.GET("/:id/allowed-window", leadHandler.AllowedWindow)
		provider.POST("/:id/agreement", negotiationHandler.ConfirmAgreement)
		provider.POST("/:id/quote", negotiationHandler.SendQuote)
	}
}

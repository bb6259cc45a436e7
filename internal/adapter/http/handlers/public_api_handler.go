package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PublicAPIHandler is the JSON API used by the site scripts and partner integrations.
type PublicAPIHandler struct {
	content usecase.IContentUseCase
	leads   usecase.ILeadUseCase
}

func NewPublicAPIHandler(content usecase.IContentUseCase, leads usecase.ILeadUseCase) *PublicAPIHandler {
	return &PublicAPIHandler{content: content, leads: leads}
}

// ListServices godoc
// @Summary List active services
// @Tags public
// @Produce json
// @Success 200 {object} response.ServicesResponse
// @Router /api/services [get]
func (h *PublicAPIHandler) ListServices(c *gin.Context) {
	services, err := h.content.ActiveServices(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("[content][handler] list services failed")
		respondError(c, mapContentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// ListPricing godoc
// @Summary List active pricing plans
// @Tags public
// @Produce json
// @Success 200 {object} response.PricingResponse
// @Router /api/pricing [get]
func (h *PublicAPIHandler) ListPricing(c *gin.Context) {
	plans, err := h.content.PricingPlans(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("[content][handler] list pricing failed")
		respondError(c, mapContentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingPlans(plans))
}

// GetPricingOption godoc
// @Summary Get one service pricing option
// @Tags public
// @Produce json
// @Param id path string true "Pricing option id"
// @Success 200 {object} response.PricingOptionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /api/pricing-options/{id} [get]
func (h *PublicAPIHandler) GetPricingOption(c *gin.Context) {
	opt, err := h.content.PricingOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapContentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingOption(opt))
}

// CreateLead godoc
// @Summary Submit a lead
// @Tags public
// @Accept json
// @Produce json
// @Param lead body request.LeadRequest true "Lead"
// @Success 201 {object} response.LeadCreatedResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /api/lead [post]
func (h *PublicAPIHandler) CreateLead(c *gin.Context) {
	var req request.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	lead, err := h.leads.Submit(c.Request.Context(), req.ToInput(entities.LeadSourceAPI))
	if err != nil {
		logrus.WithError(err).Error("[lead][handler] api submission failed")
		respondError(c, mapLeadError(err))
		return
	}
	logrus.WithField("lead_id", lead.ID).Info("[lead][handler] api lead created")
	c.JSON(http.StatusCreated, response.FromCreatedLead(lead))
}

func mapContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPricingOptionNotFound):
		return pkg.NewDomainErrorSimple("PRICING_OPTION_NOT_FOUND", "Pricing option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContentNotFound):
		return pkg.NewDomainErrorSimple("CONTENT_NOT_FOUND", "Content not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

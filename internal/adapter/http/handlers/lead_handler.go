package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LeadHandler is the staff view of the lead pipeline.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// ListLeads godoc
// @Summary List leads, newest first
// @Tags admin
// @Produce json
// @Param status query string false "Lead status"
// @Success 200 {array} entities.Lead
// @Security AdminKey
// @Router /v1/admin/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	status := entities.LeadStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		respondError(c, mapLeadError(usecase.ErrInvalidLeadStatus))
		return
	}
	leads, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetLead godoc
// @Summary Get a lead
// @Tags admin
// @Produce json
// @Param id path string true "Lead id"
// @Success 200 {object} entities.Lead
// @Failure 404 {object} pkg.HTTPError
// @Security AdminKey
// @Router /v1/admin/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatus godoc
// @Summary Move a lead along the pipeline
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Lead id"
// @Param body body request.LeadStatusRequest true "New status"
// @Success 200 {object} entities.Lead
// @Failure 409 {object} pkg.HTTPError
// @Security AdminKey
// @Router /v1/admin/leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id := c.Param("id")
	var req request.LeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.LeadStatus(req.Status), req.Notes)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", id).Warn("[lead][handler] status update failed")
		respondError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainErrorSimple("INVALID_LEAD", "Lead name and email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_STATUS", "Invalid lead status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("LEAD_TRANSITION_NOT_ALLOWED", "Lead status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

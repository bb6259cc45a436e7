package handlers

import (
	"errors"
	"net/http"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler exposes admin CRUD for one content type. Records are sent and returned
// as their entity JSON.
type CatalogHandler[T entities.Record] struct {
	name    string
	usecase usecase.ICatalogUseCase[T]
}

func NewCatalogHandler[T entities.Record](name string, uc usecase.ICatalogUseCase[T]) *CatalogHandler[T] {
	return &CatalogHandler[T]{name: name, usecase: uc}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler[T]) Get(c *gin.Context) {
	item, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), item)
	if err != nil {
		logrus.WithError(err).WithField("type", h.name).Warn("[catalog][handler] create failed")
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id := c.Param("id")
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), id, item)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"type": h.name, "id": id}).Warn("[catalog][handler] update failed")
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlugTaken):
		return pkg.NewDomainErrorSimple("SLUG_TAKEN", "Slug already used by another record", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidRecord):
		return pkg.NewDomainError("INVALID_RECORD", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

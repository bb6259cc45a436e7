package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FixtureHandler struct {
	usecase usecase.IFixtureUseCase
}

func NewFixtureHandler(uc usecase.IFixtureUseCase) *FixtureHandler {
	return &FixtureHandler{usecase: uc}
}

// Export godoc
// @Summary Export the content catalog as a fixture bundle
// @Tags admin
// @Produce json
// @Success 200 {object} entities.FixtureBundle
// @Security AdminKey
// @Router /v1/admin/fixtures [get]
func (h *FixtureHandler) Export(c *gin.Context) {
	bundle, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("[fixtures][handler] export failed")
		respondError(c, mapCatalogError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="fixtures.json"`)
	c.JSON(http.StatusOK, bundle)
}

// Import godoc
// @Summary Import a fixture bundle
// @Description Records are matched by natural key and skipped unless overwrite is set.
// @Tags admin
// @Accept json
// @Produce json
// @Param overwrite query bool false "Replace matching records"
// @Param dry_run query bool false "Count without writing"
// @Param bundle body entities.FixtureBundle true "Bundle"
// @Success 200 {object} entities.FixtureReport
// @Security AdminKey
// @Router /v1/admin/fixtures [post]
func (h *FixtureHandler) Import(c *gin.Context) {
	var bundle entities.FixtureBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid fixture bundle", http.StatusBadRequest))
		return
	}
	opts := usecase.ImportOptions{Overwrite: queryBool(c, "overwrite"), DryRun: queryBool(c, "dry_run")}

	report, err := h.usecase.Import(c.Request.Context(), bundle, opts)
	if err != nil {
		logrus.WithError(err).Error("[fixtures][handler] import failed")
		if errors.Is(err, usecase.ErrInvalidRecord) || errors.Is(err, usecase.ErrSlugTaken) {
			respondError(c, mapCatalogError(err))
			return
		}
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, report)
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

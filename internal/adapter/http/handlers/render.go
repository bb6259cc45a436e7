package handlers

import (
	"net/http"
	"strconv"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Flash is a one-off notice shown above the page content.
type Flash struct {
	Level   string
	Message string
}

// pageRenderer wraps every HTML response with the site configuration the layout needs.
type pageRenderer struct {
	content usecase.IContentUseCase
}

func (r pageRenderer) html(c *gin.Context, status int, name, title string, data gin.H) {
	site, err := r.content.SiteConfiguration(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("[page][handler] site configuration unavailable, using defaults")
		site = entities.DefaultSiteConfiguration()
	}
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = site
	data["Title"] = title
	c.HTML(status, name, data)
}

func (r pageRenderer) errorPage(c *gin.Context, status int, title, message string) {
	r.html(c, status, "error.html", title, gin.H{"Message": message})
}

func (r pageRenderer) notFound(c *gin.Context) {
	r.errorPage(c, http.StatusNotFound, "Page not found", "The page you are looking for does not exist.")
}

func (r pageRenderer) serverError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("[page][handler] render failed")
	r.errorPage(c, http.StatusInternalServerError, "Something went wrong", "Please try again in a moment.")
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context, err error) {
	respondError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
}

// queryInt reads a positive integer query value, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}

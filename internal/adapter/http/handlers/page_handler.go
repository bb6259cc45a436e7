package handlers

import (
	"encoding/xml"
	"errors"
	"net/http"

	"socialdots/internal/adapter/http/dto/request"
	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
)

// PageHandler serves the server-rendered public site.
type PageHandler struct {
	pageRenderer
	leads   usecase.ILeadUseCase
	baseURL string
}

func NewPageHandler(content usecase.IContentUseCase, leads usecase.ILeadUseCase, baseURL string) *PageHandler {
	return &PageHandler{pageRenderer: pageRenderer{content: content}, leads: leads, baseURL: baseURL}
}

// Home renders the landing page. filter selects a portfolio category slug or a
// content type alias.
func (h *PageHandler) Home(c *gin.Context) {
	page, err := h.content.Home(c.Request.Context(), c.Query("filter"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "home.html", "", gin.H{"Page": page})
}

func (h *PageHandler) Services(c *gin.Context) {
	listing, err := h.content.Services(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "services.html", "Services", gin.H{"Page": listing})
}

func (h *PageHandler) ServiceDetail(c *gin.Context) {
	page, err := h.content.ServiceDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.contentError(c, err)
		return
	}
	h.html(c, http.StatusOK, "service_detail.html", page.Service.Title, gin.H{
		"Page":        page,
		"Description": page.Service.ShortDescription,
	})
}

func (h *PageHandler) Portfolio(c *gin.Context) {
	page, err := h.content.Portfolio(c.Request.Context(), c.Query("tech"), queryInt(c, "page", 1))
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "portfolio.html", "Portfolio", gin.H{"Page": page})
}

func (h *PageHandler) ProjectDetail(c *gin.Context) {
	page, err := h.content.ProjectDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.contentError(c, err)
		return
	}
	h.html(c, http.StatusOK, "project_detail.html", page.Project.Title, gin.H{"Page": page})
}

func (h *PageHandler) Blog(c *gin.Context) {
	page, err := h.content.Blog(c.Request.Context(), c.Query("q"), c.Query("tag"), queryInt(c, "page", 1))
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "blog.html", "Blog", gin.H{"Page": page})
}

func (h *PageHandler) BlogDetail(c *gin.Context) {
	page, err := h.content.BlogDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.contentError(c, err)
		return
	}
	h.html(c, http.StatusOK, "blog_detail.html", page.Post.Title, gin.H{
		"Page":        page,
		"Description": page.Post.MetaDescription,
	})
}

func (h *PageHandler) About(c *gin.Context) {
	page, err := h.content.About(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "about.html", "About", gin.H{"Page": page})
}

func (h *PageHandler) Pricing(c *gin.Context) {
	plans, err := h.content.PricingPlans(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.html(c, http.StatusOK, "pricing.html", "Pricing", gin.H{"Page": plans})
}

func (h *PageHandler) Cart(c *gin.Context) {
	h.html(c, http.StatusOK, "cart.html", "Cart", nil)
}

// Contact renders the contact form. sent=1 is set by the redirect after a submission.
func (h *PageHandler) Contact(c *gin.Context) {
	var flash *Flash
	if c.Query("sent") == "1" {
		flash = &Flash{Level: "success", Message: "Thank you for your message! We will get back to you soon."}
	}
	h.renderContact(c, http.StatusOK, request.LeadRequest{}, nil, flash)
}

// SubmitContact stores the form as a lead and redirects back to the form.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var req request.LeadRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderContact(c, http.StatusBadRequest, req, nil, &Flash{Level: "error", Message: "Please check the form and try again."})
		return
	}
	if err := req.Validate(); err != nil {
		h.renderContact(c, http.StatusBadRequest, req, fieldErrors(err), nil)
		return
	}

	lead, err := h.leads.Submit(c.Request.Context(), req.ToInput(entities.LeadSourceContactForm))
	if err != nil {
		status := http.StatusInternalServerError
		msg := "We could not send your message. Please try again."
		if errors.Is(err, usecase.ErrInvalidLead) {
			status = http.StatusBadRequest
			msg = "Name and email are required."
		} else {
			logrus.WithError(err).Error("[lead][handler] contact submission failed")
		}
		h.renderContact(c, status, req, nil, &Flash{Level: "error", Message: msg})
		return
	}
	logrus.WithField("lead_id", lead.ID).Info("[lead][handler] contact form submitted")
	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

func (h *PageHandler) renderContact(c *gin.Context, status int, form request.LeadRequest, errs map[string]string, flash *Flash) {
	services, err := h.content.ActiveServices(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("[page][handler] services unavailable for contact form")
	}
	data := gin.H{"Form": form, "Services": services, "Errors": errs}
	if flash != nil {
		data["Flash"] = flash
	}
	h.html(c, status, "contact.html", "Contact", data)
}

func (h *PageHandler) Sitemap(c *gin.Context) {
	entries, err := h.content.Sitemap(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("[sitemap][handler] build failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	body, err := xml.Marshal(response.FromSitemap(h.baseURL, entries))
	if err != nil {
		logrus.WithError(err).Error("[sitemap][handler] encode failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

func (h *PageHandler) NotFound(c *gin.Context) {
	h.notFound(c)
}

func (h *PageHandler) contentError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrContentNotFound) {
		h.notFound(c)
		return
	}
	h.serverError(c, err)
}

// fieldErrors flattens ozzo validation errors into field -> message.
func fieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = ferr.Error()
	}
	return out
}

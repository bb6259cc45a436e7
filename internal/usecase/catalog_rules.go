package usecase

import (
	"fmt"
	"strings"
	"time"

	"socialdots/internal/domain/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const defaultBlogAuthor = "Social Dots Team"

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

// keepID prefers the stored id, then the submitted one, then a new one.
func keepID(submitted, stored string) string {
	if stored != "" {
		return stored
	}
	if s := strings.TrimSpace(submitted); s != "" {
		return s
	}
	return uuid.NewString()
}

func keepCreated(submitted, stored, now time.Time) time.Time {
	if !stored.IsZero() {
		return stored
	}
	if !submitted.IsZero() {
		return submitted
	}
	return now
}

func slugOr(slug, from string) string {
	if s := entities.Slugify(slug); s != "" {
		return s
	}
	return entities.Slugify(from)
}

// PrepareService applies the service pricing rules: a price is required unless the
// price type is custom or tiered, and custom services carry no price. Core offerings
// are always featured.
func PrepareService(s, existing entities.Service, now time.Time) (entities.Service, error) {
	s.ID = keepID(s.ID, existing.ID)
	s.Title = strings.TrimSpace(s.Title)
	s.Slug = slugOr(s.Slug, s.Title)
	if s.PriceType == "" {
		s.PriceType = entities.PriceTypeFixed
	}
	for i := range s.PricingOptions {
		if s.PricingOptions[i].ID == "" {
			s.PricingOptions[i].ID = uuid.NewString()
		}
		if s.PricingOptions[i].Period == "" {
			s.PricingOptions[i].Period = entities.PricingPeriodOneTime
		}
	}

	err := validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Slug, validation.Required),
		validation.Field(&s.Description, validation.Required),
		validation.Field(&s.PriceType, validation.In(
			entities.PriceTypeFixed, entities.PriceTypeHourly, entities.PriceTypeMonthly,
			entities.PriceTypeCustom, entities.PriceTypeTiered,
		)),
		validation.Field(&s.Price,
			validation.Required.When(s.PriceType.RequiresPrice()).Error("is required for this price type"),
			validation.Nil.When(s.PriceType == entities.PriceTypeCustom).Error("must be empty for custom pricing"),
			validation.Min(0.0).Exclusive(),
		),
		validation.Field(&s.MaintenanceFee, validation.Min(0.0)),
		validation.Field(&s.PricingOptions, validation.By(func(any) error {
			for _, o := range s.PricingOptions {
				if strings.TrimSpace(o.Name) == "" || o.Price < 0 {
					return fmt.Errorf("option %q needs a name and a non-negative price", o.ID)
				}
			}
			return nil
		})),
	)
	if err != nil {
		return entities.Service{}, invalid(err)
	}

	if s.IsCoreOffering() {
		s.IsFeatured = true
	}
	s.CreatedAt = keepCreated(s.CreatedAt, existing.CreatedAt, now)
	s.UpdatedAt = now
	return s, nil
}

func PreparePricingPlan(p, existing entities.PricingPlan, now time.Time) (entities.PricingPlan, error) {
	p.ID = keepID(p.ID, existing.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.PricePeriod == "" {
		p.PricePeriod = entities.PricingPeriodMonthly
	}
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.PricePeriod, validation.In(entities.PricingPeriodOneTime, entities.PricingPeriodMonthly, entities.PricingPeriodYearly)),
	)
	if err != nil {
		return entities.PricingPlan{}, invalid(err)
	}
	p.CreatedAt = keepCreated(p.CreatedAt, existing.CreatedAt, now)
	p.UpdatedAt = now
	return p, nil
}

func PrepareProject(p, existing entities.Project, now time.Time) (entities.Project, error) {
	p.ID = keepID(p.ID, existing.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = slugOr(p.Slug, p.Title)
	if p.Status == "" {
		p.Status = entities.ProjectStatusPlanning
	}
	if p.PortfolioType == "" {
		p.PortfolioType = entities.PortfolioTypeOther
	}
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Status, validation.In(
			entities.ProjectStatusPlanning, entities.ProjectStatusInProgress,
			entities.ProjectStatusCompleted, entities.ProjectStatusOnHold,
		)),
		validation.Field(&p.PortfolioType, validation.In(
			entities.PortfolioTypeWebsite, entities.PortfolioTypeAI,
			entities.PortfolioTypeSocial, entities.PortfolioTypeOther,
		)),
	)
	if err != nil {
		return entities.Project{}, invalid(err)
	}
	p.CreatedAt = keepCreated(p.CreatedAt, existing.CreatedAt, now)
	p.UpdatedAt = now
	return p, nil
}

// PrepareBlogPost stamps the publication time the first time a post is published.
func PrepareBlogPost(p, existing entities.BlogPost, now time.Time) (entities.BlogPost, error) {
	p.ID = keepID(p.ID, existing.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = slugOr(p.Slug, p.Title)
	if strings.TrimSpace(p.Author) == "" {
		p.Author = defaultBlogAuthor
	}
	if p.Status == "" {
		p.Status = entities.PostStatusDraft
	}
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Status, validation.In(entities.PostStatusDraft, entities.PostStatusPublished, entities.PostStatusArchived)),
	)
	if err != nil {
		return entities.BlogPost{}, invalid(err)
	}
	if p.PublishedAt == nil {
		p.PublishedAt = existing.PublishedAt
	}
	if p.Status == entities.PostStatusPublished && p.PublishedAt == nil {
		published := now
		p.PublishedAt = &published
	}
	p.CreatedAt = keepCreated(p.CreatedAt, existing.CreatedAt, now)
	p.UpdatedAt = now
	return p, nil
}

func PreparePortfolioCategory(c, existing entities.PortfolioCategory, now time.Time) (entities.PortfolioCategory, error) {
	c.ID = keepID(c.ID, existing.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = slugOr(c.Slug, c.Name)
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Slug, validation.Required),
	)
	if err != nil {
		return entities.PortfolioCategory{}, invalid(err)
	}
	c.CreatedAt = keepCreated(c.CreatedAt, existing.CreatedAt, now)
	c.UpdatedAt = now
	return c, nil
}

func PreparePortfolio(p, existing entities.Portfolio, now time.Time) (entities.Portfolio, error) {
	p.ID = keepID(p.ID, existing.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = slugOr(p.Slug, p.Title)
	if p.ContentType == "" {
		p.ContentType = entities.ContentTypePost
	}
	if p.PortfolioType == "" {
		p.PortfolioType = entities.PortfolioTypeOther
	}
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.CategoryID, validation.Required),
		validation.Field(&p.ContentType, validation.In(
			entities.ContentTypePost, entities.ContentTypeVideo, entities.ContentTypeBlog,
			entities.ContentTypeEmail, entities.ContentTypeTechnology,
		)),
		validation.Field(&p.PortfolioType, validation.In(
			entities.PortfolioTypeWebsite, entities.PortfolioTypeAI,
			entities.PortfolioTypeSocial, entities.PortfolioTypeOther,
		)),
	)
	if err != nil {
		return entities.Portfolio{}, invalid(err)
	}
	p.CreatedAt = keepCreated(p.CreatedAt, existing.CreatedAt, now)
	p.UpdatedAt = now
	return p, nil
}

func PrepareTestimonial(t, existing entities.Testimonial, now time.Time) (entities.Testimonial, error) {
	t.ID = keepID(t.ID, existing.ID)
	t.ClientName = strings.TrimSpace(t.ClientName)
	if t.Rating == 0 {
		t.Rating = 5
	}
	err := validation.ValidateStruct(&t,
		validation.Field(&t.ClientName, validation.Required),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.Min(1), validation.Max(5)),
	)
	if err != nil {
		return entities.Testimonial{}, invalid(err)
	}
	t.CreatedAt = keepCreated(t.CreatedAt, existing.CreatedAt, now)
	return t, nil
}

func PrepareTeamMember(m, existing entities.TeamMember, now time.Time) (entities.TeamMember, error) {
	m.ID = keepID(m.ID, existing.ID)
	m.Name = strings.TrimSpace(m.Name)
	err := validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Position, validation.Required),
	)
	if err != nil {
		return entities.TeamMember{}, invalid(err)
	}
	m.CreatedAt = keepCreated(m.CreatedAt, existing.CreatedAt, now)
	m.UpdatedAt = now
	return m, nil
}

// PrepareSiteConfiguration pins the single configuration record id.
func PrepareSiteConfiguration(c, _ entities.SiteConfiguration, now time.Time) (entities.SiteConfiguration, error) {
	c.ID = entities.SiteConfigurationID
	c.SiteName = strings.TrimSpace(c.SiteName)
	if err := validation.ValidateStruct(&c, validation.Field(&c.SiteName, validation.Required)); err != nil {
		return entities.SiteConfiguration{}, invalid(err)
	}
	c.UpdatedAt = now
	return c, nil
}

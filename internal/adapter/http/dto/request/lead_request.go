package request

import (
	"strings"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LeadRequest is accepted both as JSON by the public API and as a form post by the
// contact page, which names the service field service_interest.
type LeadRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Company         string `json:"company" form:"company"`
	Message         string `json:"message" form:"message"`
	ServiceID       string `json:"service_id" form:"service_id"`
	ServiceInterest string `json:"service_interest" form:"service_interest"`
	Source          string `json:"source" form:"source"`
	Budget          string `json:"budget" form:"budget"`
	Timeline        string `json:"timeline" form:"timeline"`
}

func (r LeadRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Phone, validation.Length(0, 20)),
		validation.Field(&r.Company, validation.Length(0, 100)),
	)
}

// ToInput builds the lead input, using defaultSource when the request names none.
func (r LeadRequest) ToInput(defaultSource string) usecase.LeadInput {
	serviceID := strings.TrimSpace(r.ServiceID)
	if serviceID == "" {
		serviceID = strings.TrimSpace(r.ServiceInterest)
	}
	source := strings.TrimSpace(r.Source)
	if source == "" {
		source = defaultSource
	}
	return usecase.LeadInput{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Company:           r.Company,
		ServiceInterestID: serviceID,
		Message:           r.Message,
		Source:            source,
		Budget:            r.Budget,
		Timeline:          r.Timeline,
	}
}

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r LeadStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(
			string(entities.LeadStatusNew), string(entities.LeadStatusContacted), string(entities.LeadStatusQualified),
			string(entities.LeadStatusConverted), string(entities.LeadStatusLost),
		)),
	)
}

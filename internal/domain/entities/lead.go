package entities

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// Lead sources recorded on creation.
const (
	LeadSourceContactForm = "contact_form"
	LeadSourceAPI         = "api"
	LeadSourceAIAgent     = "ai_agent"
)

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusQualified, LeadStatusLost},
	LeadStatusContacted: {LeadStatusQualified, LeadStatusConverted, LeadStatusLost},
	LeadStatusQualified: {LeadStatusConverted, LeadStatusLost},
	LeadStatusLost:      {LeadStatusContacted},
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lead is a prospective client captured from the contact form, the public API or the AI agent.
type Lead struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Company           string     `json:"company,omitempty"`
	ServiceInterestID string     `json:"service_interest_id,omitempty"`
	ServiceInterest   string     `json:"service_interest,omitempty"`
	Message           string     `json:"message,omitempty"`
	Status            LeadStatus `json:"status"`
	Source            string     `json:"source,omitempty"`
	Budget            string     `json:"budget,omitempty"`
	Timeline          string     `json:"timeline,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

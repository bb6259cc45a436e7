package entities

import "time"

type Testimonial struct {
	ID             string    `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientPosition string    `json:"client_position,omitempty"`
	ClientCompany  string    `json:"client_company,omitempty"`
	ClientImage    string    `json:"client_image,omitempty"`
	Content        string    `json:"content"`
	Rating         int       `json:"rating"`
	IsFeatured     bool      `json:"is_featured"`
	IsActive       bool      `json:"is_active"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
}

func (t Testimonial) RecordID() string   { return t.ID }
func (t Testimonial) NaturalKey() string { return t.ClientName + "|" + t.ClientCompany }

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio,omitempty"`
	Image     string    `json:"image,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	IsActive  bool      `json:"is_active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m TeamMember) RecordID() string   { return m.ID }
func (m TeamMember) NaturalKey() string { return m.Name }

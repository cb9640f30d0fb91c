package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the staff directory record of a portal user.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	CompanyEmail    string    `json:"company_email"`
	Department      string    `json:"department"`
	Role            Role      `json:"role"`
	LeadDepartments []string  `json:"lead_departments,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

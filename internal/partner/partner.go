package partner

import (
	"errors"
	"time"

	partnerDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/partner"
)

type Partner struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrPartnerNotFound = errors.New("partner not found")

func NewPartner(name, contactEmail string) *Partner {
	now := time.Now()
	return &Partner{
		Name:         name,
		ContactEmail: contactEmail,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func ToDataModel(p *Partner) *partnerDatamodel.Partner {
	return &partnerDatamodel.Partner{
		ID:           p.ID,
		Name:         p.Name,
		ContactEmail: p.ContactEmail,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromDataModel(p *partnerDatamodel.Partner) *Partner {
	return &Partner{
		ID:           p.ID,
		Name:         p.Name,
		ContactEmail: p.ContactEmail,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromDataModelSlice(partners []*partnerDatamodel.Partner) []*Partner {
	result := make([]*Partner, len(partners))
	for i, p := range partners {
		result[i] = FromDataModel(p)
	}
	return result
}

package resource

import (
	"errors"
	"time"

	resourceDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/resource"
)

// HoursPerDay converts daily sell rates into hourly billing rates.
const HoursPerDay = 8.0

// Resource is a tracked person. PartnerID is nil for supplier-employed
// resources; SellRate is the daily billing rate.
type Resource struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PartnerID *int64    `json:"partner_id,omitempty"`
	SellRate  float64   `json:"sell_rate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrResourceNotFound = errors.New("resource not found")

// HourlyRate derives the hourly billing rate from the daily sell rate.
func (r *Resource) HourlyRate() float64 {
	return r.SellRate / HoursPerDay
}

// BelongsToPartner reports whether the resource is linked to the given partner.
func (r *Resource) BelongsToPartner(partnerID int64) bool {
	return r.PartnerID != nil && *r.PartnerID == partnerID
}

func NewResource(name string, partnerID *int64, sellRate float64) *Resource {
	now := time.Now()
	return &Resource{
		Name:      name,
		PartnerID: partnerID,
		SellRate:  sellRate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ToDataModel(r *Resource) *resourceDatamodel.Resource {
	return &resourceDatamodel.Resource{
		ID:        r.ID,
		Name:      r.Name,
		PartnerID: r.PartnerID,
		SellRate:  r.SellRate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDataModel(r *resourceDatamodel.Resource) *Resource {
	return &Resource{
		ID:        r.ID,
		Name:      r.Name,
		PartnerID: r.PartnerID,
		SellRate:  r.SellRate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDataModelSlice(resources []*resourceDatamodel.Resource) []*Resource {
	result := make([]*Resource, len(resources))
	for i, r := range resources {
		result[i] = FromDataModel(r)
	}
	return result
}

package resource

import (
	"errors"
	"strings"
)

// CreateResourceDTO represents the request payload for creating a resource
type CreateResourceDTO struct {
	Name      string  `json:"name"`
	PartnerID *int64  `json:"partner_id,omitempty"`
	SellRate  float64 `json:"sell_rate"`
}

func (dto CreateResourceDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if dto.SellRate < 0 {
		return errors.New("sell rate cannot be negative")
	}
	return nil
}

// UpdateSellRateDTO represents the request for changing a resource's sell rate
type UpdateSellRateDTO struct {
	SellRate float64 `json:"sell_rate"`
}

func (dto UpdateSellRateDTO) Validate() error {
	if dto.SellRate < 0 {
		return errors.New("sell rate cannot be negative")
	}
	return nil
}

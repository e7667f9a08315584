package partner

import (
	"errors"
	"strings"
)

// CreatePartnerDTO represents the request payload for creating a partner
type CreatePartnerDTO struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
}

func (dto CreatePartnerDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if len(dto.Name) > 200 {
		return errors.New("name must be less than 200 characters")
	}
	return nil
}

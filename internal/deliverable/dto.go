package deliverable

import (
	"errors"
	"strings"
	"time"
)

// CreateDeliverableDTO represents the request payload for creating a deliverable
type CreateDeliverableDTO struct {
	PartnerID   int64      `json:"partner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (dto CreateDeliverableDTO) Validate() error {
	if dto.PartnerID <= 0 {
		return errors.New("partner_id is required")
	}
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

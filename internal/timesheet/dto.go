package timesheet

import (
	"errors"
	"time"
)

// CreateTimesheetDTO represents the request payload for creating a timesheet entry
type CreateTimesheetDTO struct {
	ResourceID  int64     `json:"resource_id"`
	WorkDate    time.Time `json:"work_date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
}

func (dto CreateTimesheetDTO) Validate() error {
	if dto.ResourceID <= 0 {
		return errors.New("resource_id is required")
	}
	if dto.WorkDate.IsZero() {
		return errors.New("work date is required")
	}
	if dto.Hours <= 0 {
		return errors.New("hours must be greater than 0")
	}
	if dto.Hours > 24 {
		return errors.New("hours cannot exceed 24 per day")
	}
	return nil
}

// RejectTimesheetDTO represents the request for rejecting a timesheet
type RejectTimesheetDTO struct {
	Reason string `json:"reason"`
}

func (dto RejectTimesheetDTO) Validate() error {
	if dto.Reason == "" {
		return errors.New("reason is required when rejecting a timesheet")
	}
	return nil
}

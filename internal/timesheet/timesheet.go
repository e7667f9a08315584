package timesheet

import (
	"errors"
	"fmt"
	"time"

	timesheetDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/timesheet"
)

// Status is the timesheet workflow state. The closed set is deliberate: a new
// status must be handled at every switch below before it compiles into billing.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusValidated Status = "validated"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusValidated, StatusRejected:
		return true
	}
	return false
}

// Billable reports whether entries in this state count toward invoicing.
// Submitted entries are included alongside validated ones.
func (s Status) Billable() bool {
	switch s {
	case StatusSubmitted, StatusValidated:
		return true
	case StatusDraft, StatusRejected:
		return false
	}
	return false
}

type Timesheet struct {
	ID          int64      `json:"id"`
	ResourceID  int64      `json:"resource_id"`
	WorkDate    time.Time  `json:"work_date"`
	Hours       float64    `json:"hours"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrInvalidTransition = errors.New("invalid timesheet status transition")
)

func (t *Timesheet) CanSubmit() bool {
	return t.Status == StatusDraft || t.Status == StatusRejected
}

func (t *Timesheet) CanValidate() bool {
	return t.Status == StatusSubmitted
}

func (t *Timesheet) CanReject() bool {
	return t.Status == StatusSubmitted
}

func (t *Timesheet) Submit() error {
	if !t.CanSubmit() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, StatusSubmitted)
	}
	now := time.Now()
	t.Status = StatusSubmitted
	t.SubmittedAt = &now
	t.UpdatedAt = now
	return nil
}

func (t *Timesheet) Validate() error {
	if !t.CanValidate() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, StatusValidated)
	}
	now := time.Now()
	t.Status = StatusValidated
	t.ProcessedAt = &now
	t.UpdatedAt = now
	return nil
}

func (t *Timesheet) Reject() error {
	if !t.CanReject() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, StatusRejected)
	}
	now := time.Now()
	t.Status = StatusRejected
	t.ProcessedAt = &now
	t.UpdatedAt = now
	return nil
}

func NewTimesheet(dto CreateTimesheetDTO) *Timesheet {
	now := time.Now()
	return &Timesheet{
		ResourceID:  dto.ResourceID,
		WorkDate:    dto.WorkDate,
		Hours:       dto.Hours,
		Description: dto.Description,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ToDataModel(t *Timesheet) *timesheetDatamodel.Timesheet {
	return &timesheetDatamodel.Timesheet{
		ID:          t.ID,
		ResourceID:  t.ResourceID,
		WorkDate:    t.WorkDate,
		Hours:       t.Hours,
		Description: t.Description,
		Status:      string(t.Status),
		SubmittedAt: t.SubmittedAt,
		ProcessedAt: t.ProcessedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModel(t *timesheetDatamodel.Timesheet) *Timesheet {
	return &Timesheet{
		ID:          t.ID,
		ResourceID:  t.ResourceID,
		WorkDate:    t.WorkDate,
		Hours:       t.Hours,
		Description: t.Description,
		Status:      Status(t.Status),
		SubmittedAt: t.SubmittedAt,
		ProcessedAt: t.ProcessedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromDataModelSlice(timesheets []*timesheetDatamodel.Timesheet) []*Timesheet {
	result := make([]*Timesheet, len(timesheets))
	for i, t := range timesheets {
		result[i] = FromDataModel(t)
	}
	return result
}

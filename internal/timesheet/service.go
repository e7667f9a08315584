package timesheet

import (
	"log/slog"
	"time"

	"github.com/amsf/project-tracker/internal"
)

// RepositoryAPI defines the data access methods for timesheets
type RepositoryAPI interface {
	Create(t *Timesheet) error
	GetByID(id int64) (*Timesheet, error)
	GetByResourceID(resourceID int64, limit, offset int) ([]*Timesheet, error)
	GetInPeriod(start, end time.Time) ([]*Timesheet, error)
	Update(t *Timesheet) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTimesheet records a new draft entry.
func (s *Service) CreateTimesheet(dto CreateTimesheetDTO) (*Timesheet, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("timesheet validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed).WithCause(err)
	}

	t := NewTimesheet(dto)
	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create timesheet", "error", err, "resource_id", dto.ResourceID)
		return nil, internal.NewInternalError("failed to create timesheet", err)
	}

	s.logger.Info("timesheet created",
		"timesheet_id", t.ID,
		"resource_id", t.ResourceID,
		"hours", t.Hours,
		"work_date", t.WorkDate.Format("2006-01-02"))

	return t, nil
}

func (s *Service) GetTimesheetByID(id int64) (*Timesheet, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get timesheet", "error", err, "timesheet_id", id)
		return nil, internal.NewNotFoundError("timesheet not found", internal.ErrCodeTimesheetNotFound).WithCause(ErrTimesheetNotFound)
	}
	return t, nil
}

func (s *Service) GetResourceTimesheets(resourceID int64, limit, offset int) ([]*Timesheet, error) {
	timesheets, err := s.repo.GetByResourceID(resourceID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list timesheets", "error", err, "resource_id", resourceID)
		return nil, internal.NewInternalError("failed to list timesheets", err)
	}
	return timesheets, nil
}

// SubmitTimesheet moves a draft (or rejected) entry into the approval queue.
func (s *Service) SubmitTimesheet(id int64) (*Timesheet, error) {
	return s.transition(id, (*Timesheet).Submit, "submitted")
}

// ValidateTimesheet marks a submitted entry as manager-approved.
func (s *Service) ValidateTimesheet(id int64, managerID int64) (*Timesheet, error) {
	t, err := s.transition(id, (*Timesheet).Validate, "validated")
	if err != nil {
		return nil, err
	}
	s.logger.Info("timesheet validated", "timesheet_id", id, "manager_id", managerID)
	return t, nil
}

// RejectTimesheet sends a submitted entry back to its owner.
func (s *Service) RejectTimesheet(id int64, managerID int64, reason string) (*Timesheet, error) {
	t, err := s.transition(id, (*Timesheet).Reject, "rejected")
	if err != nil {
		return nil, err
	}
	s.logger.Info("timesheet rejected", "timesheet_id", id, "manager_id", managerID, "reason", reason)
	return t, nil
}

func (s *Service) transition(id int64, apply func(*Timesheet) error, action string) (*Timesheet, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("timesheet not found for transition", "error", err, "timesheet_id", id, "action", action)
		return nil, internal.NewNotFoundError("timesheet not found", internal.ErrCodeTimesheetNotFound).WithCause(ErrTimesheetNotFound)
	}

	if err := apply(t); err != nil {
		s.logger.Warn("timesheet transition refused",
			"timesheet_id", id,
			"action", action,
			"current_status", t.Status)
		return nil, internal.NewConflictError(err.Error(), internal.ErrCodeInvalidStatus).WithCause(err)
	}

	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to persist timesheet transition", "error", err, "timesheet_id", id)
		return nil, internal.NewInternalError("failed to persist timesheet transition", err)
	}

	return t, nil
}

package invoice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/core/events"
	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
)

// RepositoryAPI supplies the candidate sets the aggregator filters. Fetches
// are period-scoped for efficiency only; the aggregator re-applies all
// filtering itself.
type RepositoryAPI interface {
	GetPartner(id int64) (*partner.Partner, error)
	GetResources() ([]*resource.Resource, error)
	GetTimesheetsInPeriod(start, end time.Time) ([]*timesheet.Timesheet, error)
	GetExpensesInPeriod(start, end time.Time) ([]*expense.Expense, error)
}

type Service struct {
	repo   RepositoryAPI
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// GenerateInvoice fetches the candidate sets and computes the summary for one
// partner and period. It is safe to retry: the computation is pure and
// nothing is persisted. Errors come back as AppErrors so handlers can map
// them to HTTP statuses directly.
func (s *Service) GenerateInvoice(ctx context.Context, partnerID int64, period Period, generatedBy string) (*Summary, error) {
	if err := period.Validate(); err != nil {
		return nil, internal.NewValidationError("invalid invoice period", internal.ErrCodeInvalidPeriod).WithCause(err)
	}

	p, err := s.repo.GetPartner(partnerID)
	if err != nil {
		s.logger.Warn("invoice generation refused: partner lookup failed", "partner_id", partnerID, "error", err)
		return nil, internal.NewNotFoundError("partner not found", internal.ErrCodePartnerNotFound).WithCause(partner.ErrPartnerNotFound)
	}

	resources, err := s.repo.GetResources()
	if err != nil {
		s.logger.Error("failed to load resource directory", "error", err)
		return nil, internal.NewInternalError("failed to load resource directory", err)
	}

	timesheets, err := s.repo.GetTimesheetsInPeriod(period.Start, period.End)
	if err != nil {
		s.logger.Error("failed to load timesheets", "error", err, "partner_id", partnerID)
		return nil, internal.NewInternalError("failed to load timesheets", err)
	}

	expenses, err := s.repo.GetExpensesInPeriod(period.Start, period.End)
	if err != nil {
		s.logger.Error("failed to load expenses", "error", err, "partner_id", partnerID)
		return nil, internal.NewInternalError("failed to load expenses", err)
	}

	summary, err := GenerateInvoice(p, period, timesheets, expenses, resources)
	if err != nil {
		if errors.Is(err, ErrUnknownPartner) {
			return nil, internal.NewNotFoundError("partner has no resources in the directory", internal.ErrCodePartnerNotFound).WithCause(err)
		}
		return nil, internal.NewValidationError("invalid invoice period", internal.ErrCodeInvalidPeriod).WithCause(err)
	}

	for _, w := range summary.Warnings {
		s.logger.Warn("invoice data integrity warning",
			"partner_id", partnerID,
			"entry_type", w.EntryType,
			"entry_id", w.EntryID,
			"resource_id", w.ResourceID,
			"message", w.Message)
	}

	s.logger.Info("invoice generated",
		"partner_id", partnerID,
		"user_id", internal.UserIDFromContext(ctx),
		"generated_by", generatedBy,
		"period_start", period.Start.Format("2006-01-02"),
		"period_end", period.End.Format("2006-01-02"),
		"invoice_total", summary.InvoiceTotal,
		"line_items", summary.LineItemCount())

	if s.bus != nil {
		event := events.NewInvoiceGeneratedEvent(
			partnerID,
			period.Start.Format("2006-01-02"),
			period.End.Format("2006-01-02"),
			summary.InvoiceTotal,
			summary.LineItemCount(),
			generatedBy,
		)
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish invoice event", "error", err)
		}
	}

	return summary, nil
}

package deliverable

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/core/events"
)

// RepositoryAPI defines the data access methods for deliverables
type RepositoryAPI interface {
	Create(d *Deliverable) error
	GetByID(id int64) (*Deliverable, error)
	GetByPartnerID(partnerID int64) ([]*Deliverable, error)
	Update(d *Deliverable) error
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

func (s *Service) CreateDeliverable(dto CreateDeliverableDTO) (*Deliverable, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("deliverable validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed).WithCause(err)
	}

	d := NewDeliverable(dto.PartnerID, dto.Name, dto.Description, dto.DueDate)
	if err := s.repo.Create(d); err != nil {
		s.logger.Error("failed to create deliverable", "error", err, "partner_id", dto.PartnerID)
		return nil, internal.NewInternalError("failed to create deliverable", err)
	}

	s.logger.Info("deliverable created", "deliverable_id", d.ID, "partner_id", d.PartnerID)
	return d, nil
}

func (s *Service) GetDeliverableByID(id int64) (*Deliverable, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound()
	}
	return d, nil
}

func (s *Service) GetPartnerDeliverables(partnerID int64) ([]*Deliverable, error) {
	deliverables, err := s.repo.GetByPartnerID(partnerID)
	if err != nil {
		s.logger.Error("failed to list deliverables", "error", err, "partner_id", partnerID)
		return nil, internal.NewInternalError("failed to list deliverables", err)
	}
	return deliverables, nil
}

// SignAsSupplier records the supplier-side signature.
func (s *Service) SignAsSupplier(id int64, userID int64) (*Deliverable, error) {
	return s.sign(id, userID, (*Deliverable).SignAsSupplier, "supplier")
}

// SignAsPartner records the partner-side signature.
func (s *Service) SignAsPartner(id int64, userID int64) (*Deliverable, error) {
	return s.sign(id, userID, (*Deliverable).SignAsPartner, "partner")
}

func (s *Service) sign(id, userID int64, apply func(*Deliverable, int64) error, side string) (*Deliverable, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound()
	}

	if err := apply(d, userID); err != nil {
		s.logger.Warn("deliverable signature refused",
			"deliverable_id", id,
			"side", side,
			"user_id", userID,
			"error", err)
		return nil, internal.NewConflictError("already signed by this party", internal.ErrCodeAlreadySigned).WithCause(err)
	}

	if err := s.repo.Update(d); err != nil {
		s.logger.Error("failed to persist signature", "error", err, "deliverable_id", id)
		return nil, internal.NewInternalError("failed to persist signature", err)
	}

	s.logger.Info("deliverable signed", "deliverable_id", id, "side", side, "user_id", userID)
	return d, nil
}

// IssueCertificate issues the completion certificate once both parties have
// signed. The certification event is published synchronously so the audit
// trail is written before the caller sees the result.
func (s *Service) IssueCertificate(ctx context.Context, id int64) (*Deliverable, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound()
	}

	if err := d.IssueCertificate(); err != nil {
		s.logger.Warn("certificate issuance refused", "deliverable_id", id, "error", err)
		if errors.Is(err, ErrAlreadyCertified) {
			return nil, internal.NewConflictError("certificate already issued", internal.ErrCodeInvalidStatus).WithCause(err)
		}
		return nil, internal.NewUnprocessableError("both signatures are required", internal.ErrCodeSignOffIncomplete).WithCause(err)
	}

	if err := s.repo.Update(d); err != nil {
		s.logger.Error("failed to persist certificate", "error", err, "deliverable_id", id)
		return nil, internal.NewInternalError("failed to persist certificate", err)
	}

	s.logger.Info("certificate issued", "deliverable_id", id, "partner_id", d.PartnerID)

	if s.bus != nil {
		if err := s.bus.PublishSync(ctx, events.NewDeliverableCertifiedEvent(d.ID, d.PartnerID)); err != nil {
			s.logger.Error("failed to publish certification event", "error", err)
		}
	}

	return d, nil
}

func notFound() *internal.AppError {
	return internal.NewNotFoundError("deliverable not found", internal.ErrCodeDeliverableNotFound).WithCause(ErrDeliverableNotFound)
}

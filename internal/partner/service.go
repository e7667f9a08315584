package partner

import "log/slog"

// RepositoryAPI defines the data access methods for partners
type RepositoryAPI interface {
	Create(partner *Partner) error
	GetByID(id int64) (*Partner, error)
	GetAll() ([]*Partner, error)
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

func (s *Service) CreatePartner(dto CreatePartnerDTO) (*Partner, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("partner validation failed", "error", err)
		return nil, err
	}

	p := NewPartner(dto.Name, dto.ContactEmail)
	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create partner", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("partner created", "partner_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) GetPartnerByID(id int64) (*Partner, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get partner", "error", err, "partner_id", id)
		return nil, ErrPartnerNotFound
	}
	return p, nil
}

func (s *Service) GetAllPartners() ([]*Partner, error) {
	partners, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list partners", "error", err)
		return nil, err
	}
	return partners, nil
}

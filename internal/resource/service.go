package resource

import "log/slog"

// RepositoryAPI defines the data access methods for resources
type RepositoryAPI interface {
	Create(resource *Resource) error
	GetByID(id int64) (*Resource, error)
	GetByPartnerID(partnerID int64) ([]*Resource, error)
	GetAll() ([]*Resource, error)
	UpdateSellRate(id int64, sellRate float64) error
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

func (s *Service) CreateResource(dto CreateResourceDTO) (*Resource, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("resource validation failed", "error", err)
		return nil, err
	}

	res := NewResource(dto.Name, dto.PartnerID, dto.SellRate)
	if err := s.repo.Create(res); err != nil {
		s.logger.Error("failed to create resource", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("resource created", "resource_id", res.ID, "name", res.Name)
	return res, nil
}

func (s *Service) GetResourceByID(id int64) (*Resource, error) {
	res, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get resource", "error", err, "resource_id", id)
		return nil, ErrResourceNotFound
	}
	return res, nil
}

func (s *Service) GetResourcesByPartner(partnerID int64) ([]*Resource, error) {
	resources, err := s.repo.GetByPartnerID(partnerID)
	if err != nil {
		s.logger.Error("failed to list partner resources", "error", err, "partner_id", partnerID)
		return nil, err
	}
	return resources, nil
}

func (s *Service) GetAllResources() ([]*Resource, error) {
	resources, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list resources", "error", err)
		return nil, err
	}
	return resources, nil
}

func (s *Service) UpdateSellRate(id int64, dto UpdateSellRateDTO) (*Resource, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, ErrResourceNotFound
	}

	if err := s.repo.UpdateSellRate(id, dto.SellRate); err != nil {
		s.logger.Error("failed to update sell rate", "error", err, "resource_id", id)
		return nil, err
	}

	s.logger.Info("sell rate updated", "resource_id", id, "sell_rate", dto.SellRate)
	return s.repo.GetByID(id)
}

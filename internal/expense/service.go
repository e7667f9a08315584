package expense

import (
	"log/slog"
	"time"
)

// RepositoryAPI defines the data access methods for expenses
type RepositoryAPI interface {
	Create(e *Expense) error
	GetByID(id int64) (*Expense, error)
	GetByResourceID(resourceID int64, limit, offset int) ([]*Expense, error)
	GetInPeriod(start, end time.Time) ([]*Expense, error)
	UpdateChargeable(id int64, chargeable bool) error
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

func (s *Service) CreateExpense(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err)
		return nil, err
	}

	e := NewExpense(dto)
	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create expense", "error", err, "resource_id", dto.ResourceID)
		return nil, err
	}

	s.logger.Info("expense recorded",
		"expense_id", e.ID,
		"resource_id", e.ResourceID,
		"amount", e.Amount,
		"chargeable", e.Chargeable,
		"procurement_method", e.ProcurementMethod)

	return e, nil
}

func (s *Service) GetExpenseByID(id int64) (*Expense, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, ErrExpenseNotFound
	}
	return e, nil
}

func (s *Service) GetResourceExpenses(resourceID int64, limit, offset int) ([]*Expense, error) {
	expenses, err := s.repo.GetByResourceID(resourceID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "resource_id", resourceID)
		return nil, err
	}
	return expenses, nil
}

func (s *Service) UpdateChargeable(id int64, dto UpdateChargeableDTO) (*Expense, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, ErrExpenseNotFound
	}

	if err := s.repo.UpdateChargeable(id, dto.Chargeable); err != nil {
		s.logger.Error("failed to update chargeable flag", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense chargeable flag updated", "expense_id", id, "chargeable", dto.Chargeable)
	return s.repo.GetByID(id)
}

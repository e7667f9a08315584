package postgres

import (
	"time"

	expenseDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/expense"
	"github.com/amsf/project-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.RepositoryAPI interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.RepositoryAPI {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(e *expense.Expense) error {
	dm := expense.ToDataModel(e)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	e.ID = dm.ID
	return nil
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var dm expenseDatamodel.Expense
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, expense.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense.FromDataModel(&dm), nil
}

func (r *ExpenseRepository) GetByResourceID(resourceID int64, limit, offset int) ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.Where("resource_id = ?", resourceID).
		Order("expense_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) GetInPeriod(start, end time.Time) ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date ASC, id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

func (r *ExpenseRepository) UpdateChargeable(id int64, chargeable bool) error {
	return r.db.Model(&expenseDatamodel.Expense{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"chargeable": chargeable,
			"updated_at": time.Now(),
		}).Error
}

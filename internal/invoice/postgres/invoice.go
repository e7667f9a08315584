package postgres

import (
	"time"

	expenseDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/expense"
	partnerDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/partner"
	resourceDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/resource"
	timesheetDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/timesheet"
	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/invoice"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
	"gorm.io/gorm"
)

// InvoiceRepository loads the candidate sets the aggregator works over.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) invoice.RepositoryAPI {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) GetPartner(id int64) (*partner.Partner, error) {
	var dm partnerDatamodel.Partner
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, partner.ErrPartnerNotFound
		}
		return nil, err
	}
	return partner.FromDataModel(&dm), nil
}

func (r *InvoiceRepository) GetResources() ([]*resource.Resource, error) {
	var dms []*resourceDatamodel.Resource
	if err := r.db.Find(&dms).Error; err != nil {
		return nil, err
	}
	return resource.FromDataModelSlice(dms), nil
}

func (r *InvoiceRepository) GetTimesheetsInPeriod(start, end time.Time) ([]*timesheet.Timesheet, error) {
	var dms []*timesheetDatamodel.Timesheet
	err := r.db.Where("work_date >= ? AND work_date <= ?", start, end).
		Order("work_date ASC, id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return timesheet.FromDataModelSlice(dms), nil
}

func (r *InvoiceRepository) GetExpensesInPeriod(start, end time.Time) ([]*expense.Expense, error) {
	var dms []*expenseDatamodel.Expense
	err := r.db.Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date ASC, id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return expense.FromDataModelSlice(dms), nil
}

package postgres

import (
	"time"

	timesheetDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/timesheet"
	"github.com/amsf/project-tracker/internal/timesheet"
	"gorm.io/gorm"
)

// TimesheetRepository implements the timesheet.RepositoryAPI interface using GORM
type TimesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) timesheet.RepositoryAPI {
	return &TimesheetRepository{db: db}
}

func (r *TimesheetRepository) Create(t *timesheet.Timesheet) error {
	dm := timesheet.ToDataModel(t)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	t.ID = dm.ID
	return nil
}

func (r *TimesheetRepository) GetByID(id int64) (*timesheet.Timesheet, error) {
	var dm timesheetDatamodel.Timesheet
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, timesheet.ErrTimesheetNotFound
		}
		return nil, err
	}
	return timesheet.FromDataModel(&dm), nil
}

func (r *TimesheetRepository) GetByResourceID(resourceID int64, limit, offset int) ([]*timesheet.Timesheet, error) {
	var dms []*timesheetDatamodel.Timesheet
	err := r.db.Where("resource_id = ?", resourceID).
		Order("work_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return timesheet.FromDataModelSlice(dms), nil
}

func (r *TimesheetRepository) GetInPeriod(start, end time.Time) ([]*timesheet.Timesheet, error) {
	var dms []*timesheetDatamodel.Timesheet
	err := r.db.Where("work_date >= ? AND work_date <= ?", start, end).
		Order("work_date ASC, id ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return timesheet.FromDataModelSlice(dms), nil
}

func (r *TimesheetRepository) Update(t *timesheet.Timesheet) error {
	t.UpdatedAt = time.Now()
	return r.db.Save(timesheet.ToDataModel(t)).Error
}

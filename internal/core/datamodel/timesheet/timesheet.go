package timesheet

import "time"

type Timesheet struct {
	ID          int64      `gorm:"primaryKey"`
	ResourceID  int64      `gorm:"column:resource_id;not null"`
	WorkDate    time.Time  `gorm:"column:work_date;type:date;not null"`
	Hours       float64    `gorm:"column:hours;not null"`
	Description string     `gorm:"column:description"`
	Status      string     `gorm:"column:status;default:draft"`
	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

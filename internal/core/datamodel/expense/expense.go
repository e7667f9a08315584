package expense

import "time"

type Expense struct {
	ID                int64     `gorm:"primaryKey"`
	ResourceID        int64     `gorm:"column:resource_id;not null"`
	ExpenseDate       time.Time `gorm:"column:expense_date;type:date;not null"`
	Amount            float64   `gorm:"column:amount;not null"`
	Category          string    `gorm:"column:category"`
	Description       string    `gorm:"column:description"`
	Chargeable        bool      `gorm:"column:chargeable;default:false"`
	ProcurementMethod string    `gorm:"column:procurement_method;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Expense) TableName() string {
	return "expenses"
}

package resource

import "time"

// Resource is a person whose time and expenses are tracked. PartnerID is nil
// for supplier-employed resources.
type Resource struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	PartnerID *int64    `gorm:"column:partner_id"`
	SellRate  float64   `gorm:"column:sell_rate;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Resource) TableName() string {
	return "resources"
}

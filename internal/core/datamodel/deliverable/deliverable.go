package deliverable

import "time"

type Deliverable struct {
	ID                  int64      `gorm:"primaryKey"`
	PartnerID           int64      `gorm:"column:partner_id;not null"`
	Name                string     `gorm:"column:name;not null"`
	Description         string     `gorm:"column:description"`
	DueDate             *time.Time `gorm:"column:due_date;type:date"`
	SupplierSignedBy    *int64     `gorm:"column:supplier_signed_by"`
	SupplierSignedAt    *time.Time `gorm:"column:supplier_signed_at"`
	PartnerSignedBy     *int64     `gorm:"column:partner_signed_by"`
	PartnerSignedAt     *time.Time `gorm:"column:partner_signed_at"`
	CertificateIssuedAt *time.Time `gorm:"column:certificate_issued_at"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Deliverable) TableName() string {
	return "deliverables"
}

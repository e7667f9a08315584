package postgres

import (
	partnerDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/partner"
	"github.com/amsf/project-tracker/internal/partner"
	"gorm.io/gorm"
)

// PartnerRepository implements the partner.RepositoryAPI interface using GORM
type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) partner.RepositoryAPI {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Create(p *partner.Partner) error {
	dm := partner.ToDataModel(p)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	p.ID = dm.ID
	return nil
}

func (r *PartnerRepository) GetByID(id int64) (*partner.Partner, error) {
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

func (r *PartnerRepository) GetAll() ([]*partner.Partner, error) {
	var dms []*partnerDatamodel.Partner
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return partner.FromDataModelSlice(dms), nil
}

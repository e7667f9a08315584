package postgres

import (
	"time"

	resourceDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/resource"
	"github.com/amsf/project-tracker/internal/resource"
	"gorm.io/gorm"
)

// ResourceRepository implements the resource.RepositoryAPI interface using GORM
type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) resource.RepositoryAPI {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(res *resource.Resource) error {
	dm := resource.ToDataModel(res)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	res.ID = dm.ID
	return nil
}

func (r *ResourceRepository) GetByID(id int64) (*resource.Resource, error) {
	var dm resourceDatamodel.Resource
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, resource.ErrResourceNotFound
		}
		return nil, err
	}
	return resource.FromDataModel(&dm), nil
}

func (r *ResourceRepository) GetByPartnerID(partnerID int64) ([]*resource.Resource, error) {
	var dms []*resourceDatamodel.Resource
	err := r.db.Where("partner_id = ?", partnerID).Order("name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return resource.FromDataModelSlice(dms), nil
}

func (r *ResourceRepository) GetAll() ([]*resource.Resource, error) {
	var dms []*resourceDatamodel.Resource
	err := r.db.Order("name ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return resource.FromDataModelSlice(dms), nil
}

func (r *ResourceRepository) UpdateSellRate(id int64, sellRate float64) error {
	return r.db.Model(&resourceDatamodel.Resource{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sell_rate":  sellRate,
			"updated_at": time.Now(),
		}).Error
}

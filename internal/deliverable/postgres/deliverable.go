package postgres

import (
	deliverableDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/deliverable"
	"github.com/amsf/project-tracker/internal/deliverable"
	"gorm.io/gorm"
)

// DeliverableRepository implements the deliverable.RepositoryAPI interface using GORM
type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) deliverable.RepositoryAPI {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) Create(d *deliverable.Deliverable) error {
	dm := deliverable.ToDataModel(d)
	if err := r.db.Create(dm).Error; err != nil {
		return err
	}
	d.ID = dm.ID
	return nil
}

func (r *DeliverableRepository) GetByID(id int64) (*deliverable.Deliverable, error) {
	var dm deliverableDatamodel.Deliverable
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, deliverable.ErrDeliverableNotFound
		}
		return nil, err
	}
	return deliverable.FromDataModel(&dm), nil
}

func (r *DeliverableRepository) GetByPartnerID(partnerID int64) ([]*deliverable.Deliverable, error) {
	var dms []*deliverableDatamodel.Deliverable
	err := r.db.Where("partner_id = ?", partnerID).Order("due_date ASC, id ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return deliverable.FromDataModelSlice(dms), nil
}

func (r *DeliverableRepository) Update(d *deliverable.Deliverable) error {
	dm := deliverable.ToDataModel(d)
	return r.db.Save(dm).Error
}

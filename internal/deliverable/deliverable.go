package deliverable

import (
	"errors"
	"time"

	deliverableDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/deliverable"
)

// Deliverable is a piece of work requiring dual sign-off: one supplier-side
// signature and one partner-side signature, in either order, each settable
// once. A completion certificate can only be issued once both are present.
type Deliverable struct {
	ID                  int64      `json:"id"`
	PartnerID           int64      `json:"partner_id"`
	Name                string     `json:"name"`
	Description         string     `json:"description,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	SupplierSignedBy    *int64     `json:"supplier_signed_by,omitempty"`
	SupplierSignedAt    *time.Time `json:"supplier_signed_at,omitempty"`
	PartnerSignedBy     *int64     `json:"partner_signed_by,omitempty"`
	PartnerSignedAt     *time.Time `json:"partner_signed_at,omitempty"`
	CertificateIssuedAt *time.Time `json:"certificate_issued_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

var (
	ErrDeliverableNotFound = errors.New("deliverable not found")
	ErrAlreadySigned       = errors.New("deliverable already signed by this party")
	ErrSignOffIncomplete   = errors.New("both signatures are required before certificate issuance")
	ErrAlreadyCertified    = errors.New("certificate already issued")
)

func (d *Deliverable) SupplierSigned() bool {
	return d.SupplierSignedAt != nil
}

func (d *Deliverable) PartnerSigned() bool {
	return d.PartnerSignedAt != nil
}

// FullySigned reports whether both parties have signed.
func (d *Deliverable) FullySigned() bool {
	return d.SupplierSigned() && d.PartnerSigned()
}

// SignAsSupplier records the supplier-side signature. Each party signs once.
func (d *Deliverable) SignAsSupplier(userID int64) error {
	if d.SupplierSigned() {
		return ErrAlreadySigned
	}
	now := time.Now()
	d.SupplierSignedBy = &userID
	d.SupplierSignedAt = &now
	d.UpdatedAt = now
	return nil
}

// SignAsPartner records the partner-side signature. Each party signs once.
func (d *Deliverable) SignAsPartner(userID int64) error {
	if d.PartnerSigned() {
		return ErrAlreadySigned
	}
	now := time.Now()
	d.PartnerSignedBy = &userID
	d.PartnerSignedAt = &now
	d.UpdatedAt = now
	return nil
}

// IssueCertificate marks the deliverable as certified. Requires both
// signatures; issuing twice is refused.
func (d *Deliverable) IssueCertificate() error {
	if !d.FullySigned() {
		return ErrSignOffIncomplete
	}
	if d.CertificateIssuedAt != nil {
		return ErrAlreadyCertified
	}
	now := time.Now()
	d.CertificateIssuedAt = &now
	d.UpdatedAt = now
	return nil
}

func NewDeliverable(partnerID int64, name, description string, dueDate *time.Time) *Deliverable {
	now := time.Now()
	return &Deliverable{
		PartnerID:   partnerID,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ToDataModel(d *Deliverable) *deliverableDatamodel.Deliverable {
	return &deliverableDatamodel.Deliverable{
		ID:                  d.ID,
		PartnerID:           d.PartnerID,
		Name:                d.Name,
		Description:         d.Description,
		DueDate:             d.DueDate,
		SupplierSignedBy:    d.SupplierSignedBy,
		SupplierSignedAt:    d.SupplierSignedAt,
		PartnerSignedBy:     d.PartnerSignedBy,
		PartnerSignedAt:     d.PartnerSignedAt,
		CertificateIssuedAt: d.CertificateIssuedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func FromDataModel(d *deliverableDatamodel.Deliverable) *Deliverable {
	return &Deliverable{
		ID:                  d.ID,
		PartnerID:           d.PartnerID,
		Name:                d.Name,
		Description:         d.Description,
		DueDate:             d.DueDate,
		SupplierSignedBy:    d.SupplierSignedBy,
		SupplierSignedAt:    d.SupplierSignedAt,
		PartnerSignedBy:     d.PartnerSignedBy,
		PartnerSignedAt:     d.PartnerSignedAt,
		CertificateIssuedAt: d.CertificateIssuedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func FromDataModelSlice(deliverables []*deliverableDatamodel.Deliverable) []*Deliverable {
	result := make([]*Deliverable, len(deliverables))
	for i, d := range deliverables {
		result[i] = FromDataModel(d)
	}
	return result
}

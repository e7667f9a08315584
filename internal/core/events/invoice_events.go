package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeInvoiceGenerated     = "invoice.generated"
	EventTypeDeliverableCertified = "deliverable.certified"
)

type InvoiceGeneratedEvent struct {
	BaseEvent
	PartnerID    int64   `json:"partner_id"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	InvoiceTotal float64 `json:"invoice_total"`
	LineCount    int     `json:"line_count"`
	GeneratedBy  string  `json:"generated_by"`
}

func NewInvoiceGeneratedEvent(partnerID int64, periodStart, periodEnd string, invoiceTotal float64, lineCount int, generatedBy string) *InvoiceGeneratedEvent {
	return &InvoiceGeneratedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeInvoiceGenerated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"partner_id":    partnerID,
				"period_start":  periodStart,
				"period_end":    periodEnd,
				"invoice_total": invoiceTotal,
				"line_count":    lineCount,
				"generated_by":  generatedBy,
			},
		},
		PartnerID:    partnerID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		InvoiceTotal: invoiceTotal,
		LineCount:    lineCount,
		GeneratedBy:  generatedBy,
	}
}

type DeliverableCertifiedEvent struct {
	BaseEvent
	DeliverableID int64 `json:"deliverable_id"`
	PartnerID     int64 `json:"partner_id"`
}

func NewDeliverableCertifiedEvent(deliverableID, partnerID int64) *DeliverableCertifiedEvent {
	return &DeliverableCertifiedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDeliverableCertified,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"deliverable_id": deliverableID,
				"partner_id":     partnerID,
			},
		},
		DeliverableID: deliverableID,
		PartnerID:     partnerID,
	}
}

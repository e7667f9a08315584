package expense

import (
	"errors"
	"fmt"
	"time"
)

// CreateExpenseDTO represents the request payload for recording an expense
type CreateExpenseDTO struct {
	ResourceID        int64             `json:"resource_id"`
	ExpenseDate       time.Time         `json:"expense_date"`
	Amount            float64           `json:"amount"`
	Category          string            `json:"category"`
	Description       string            `json:"description,omitempty"`
	Chargeable        bool              `json:"chargeable"`
	ProcurementMethod ProcurementMethod `json:"procurement_method"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.ResourceID <= 0 {
		return errors.New("resource_id is required")
	}
	if dto.ExpenseDate.IsZero() {
		return errors.New("expense date is required")
	}
	if dto.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if dto.Category == "" {
		return errors.New("category is required")
	}
	if !dto.ProcurementMethod.Valid() {
		return fmt.Errorf("procurement method must be %q or %q", ProcuredBySupplier, ProcuredByPartner)
	}
	return nil
}

// UpdateChargeableDTO flips whether an expense may be passed to the customer
type UpdateChargeableDTO struct {
	Chargeable bool `json:"chargeable"`
}

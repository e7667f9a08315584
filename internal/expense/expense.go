package expense

import (
	"errors"
	"time"

	expenseDatamodel "github.com/amsf/project-tracker/internal/core/datamodel/expense"
)

// ProcurementMethod identifies which party financially paid for an expense.
// Partner-paid expenses appear on the partner invoice; supplier-paid expenses
// are tracked separately and never billed to the partner.
type ProcurementMethod string

const (
	ProcuredBySupplier ProcurementMethod = "supplier"
	ProcuredByPartner  ProcurementMethod = "partner"
)

// Valid reports whether m is one of the known procurement methods.
func (m ProcurementMethod) Valid() bool {
	switch m {
	case ProcuredBySupplier, ProcuredByPartner:
		return true
	}
	return false
}

// BilledToPartner reports whether an expense with this method contributes to
// the partner invoice total.
func (m ProcurementMethod) BilledToPartner() bool {
	switch m {
	case ProcuredByPartner:
		return true
	case ProcuredBySupplier:
		return false
	}
	return false
}

type Expense struct {
	ID                int64             `json:"id"`
	ResourceID        int64             `json:"resource_id"`
	ExpenseDate       time.Time         `json:"expense_date"`
	Amount            float64           `json:"amount"`
	Category          string            `json:"category"`
	Description       string            `json:"description,omitempty"`
	Chargeable        bool              `json:"chargeable"`
	ProcurementMethod ProcurementMethod `json:"procurement_method"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

var ErrExpenseNotFound = errors.New("expense not found")

func NewExpense(dto CreateExpenseDTO) *Expense {
	now := time.Now()
	return &Expense{
		ResourceID:        dto.ResourceID,
		ExpenseDate:       dto.ExpenseDate,
		Amount:            dto.Amount,
		Category:          dto.Category,
		Description:       dto.Description,
		Chargeable:        dto.Chargeable,
		ProcurementMethod: dto.ProcurementMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:                e.ID,
		ResourceID:        e.ResourceID,
		ExpenseDate:       e.ExpenseDate,
		Amount:            e.Amount,
		Category:          e.Category,
		Description:       e.Description,
		Chargeable:        e.Chargeable,
		ProcurementMethod: string(e.ProcurementMethod),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:                e.ID,
		ResourceID:        e.ResourceID,
		ExpenseDate:       e.ExpenseDate,
		Amount:            e.Amount,
		Category:          e.Category,
		Description:       e.Description,
		Chargeable:        e.Chargeable,
		ProcurementMethod: ProcurementMethod(e.ProcurementMethod),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}

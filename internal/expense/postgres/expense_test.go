package postgres

import (
	"testing"
	"time"

	"github.com/amsf/project-tracker/internal/expense"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestExpenseRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ExpenseRepository Suite")
}

type SQLiteExpense struct {
	ID                int64     `gorm:"primaryKey"`
	ResourceID        int64     `gorm:"column:resource_id;not null"`
	ExpenseDate       time.Time `gorm:"column:expense_date;not null"`
	Amount            float64   `gorm:"column:amount;not null"`
	Category          string    `gorm:"column:category"`
	Description       string    `gorm:"column:description"`
	Chargeable        bool      `gorm:"column:chargeable"`
	ProcurementMethod string    `gorm:"column:procurement_method;default:'supplier'"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (SQLiteExpense) TableName() string {
	return "expenses"
}

var _ = Describe("ExpenseRepository", func() {
	var (
		db   *gorm.DB
		repo expense.RepositoryAPI
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteExpense{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewExpenseRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		err = sqlDB.Close()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("should create an expense successfully", func() {
			e := &expense.Expense{
				ResourceID:        1,
				ExpenseDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:            120,
				Category:          "travel",
				Chargeable:        true,
				ProcurementMethod: expense.ProcuredByPartner,
			}

			err := repo.Create(e)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).To(BeNumerically(">", 0))
		})
	})

	Describe("GetByID", func() {
		var created *expense.Expense

		BeforeEach(func() {
			created = &expense.Expense{
				ResourceID:        1,
				ExpenseDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:            120,
				Category:          "travel",
				Chargeable:        true,
				ProcurementMethod: expense.ProcuredByPartner,
			}
			err := repo.Create(created)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should retrieve expense by ID successfully", func() {
			retrieved, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved).NotTo(BeNil())
			Expect(retrieved.ID).To(Equal(created.ID))
			Expect(retrieved.ResourceID).To(Equal(created.ResourceID))
			Expect(retrieved.Amount).To(Equal(created.Amount))
			Expect(retrieved.Chargeable).To(BeTrue())
			Expect(retrieved.ProcurementMethod).To(Equal(expense.ProcuredByPartner))
		})

		It("should return ErrExpenseNotFound for non-existent ID", func() {
			retrieved, err := repo.GetByID(99999)
			Expect(err).To(Equal(expense.ErrExpenseNotFound))
			Expect(retrieved).To(BeNil())
		})
	})

	Describe("GetInPeriod", func() {
		BeforeEach(func() {
			dates := []time.Time{
				time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			}
			for i, d := range dates {
				err := repo.Create(&expense.Expense{
					ResourceID:        int64(i + 1),
					ExpenseDate:       d,
					Amount:            100,
					ProcurementMethod: expense.ProcuredBySupplier,
				})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return expenses within the inclusive range ordered by date", func() {
			start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

			results, err := repo.GetInPeriod(start, end)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ExpenseDate.Day()).To(Equal(1))
			Expect(results[1].ExpenseDate.Day()).To(Equal(31))
		})
	})

	Describe("UpdateChargeable", func() {
		It("should flip the chargeable flag", func() {
			created := &expense.Expense{
				ResourceID:        1,
				ExpenseDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:            50,
				Chargeable:        true,
				ProcurementMethod: expense.ProcuredBySupplier,
			}
			err := repo.Create(created)
			Expect(err).NotTo(HaveOccurred())

			err = repo.UpdateChargeable(created.ID, false)
			Expect(err).NotTo(HaveOccurred())

			retrieved, err := repo.GetByID(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.Chargeable).To(BeFalse())
		})
	})
})

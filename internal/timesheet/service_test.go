package timesheet_test

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/timesheet"
)

func TestTimesheet(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Timesheet Suite")
}

// Mock repository for testing
type mockTimesheetRepository struct {
	timesheets  map[int64]*timesheet.Timesheet
	createError error
	updateError error
	nextID      int64
}

func newMockTimesheetRepository() *mockTimesheetRepository {
	return &mockTimesheetRepository{
		timesheets: make(map[int64]*timesheet.Timesheet),
		nextID:     1,
	}
}

func (m *mockTimesheetRepository) Create(t *timesheet.Timesheet) error {
	if m.createError != nil {
		return m.createError
	}
	t.ID = m.nextID
	m.nextID++
	m.timesheets[t.ID] = t
	return nil
}

func (m *mockTimesheetRepository) GetByID(id int64) (*timesheet.Timesheet, error) {
	t, exists := m.timesheets[id]
	if !exists {
		return nil, errors.New("timesheet not found")
	}
	return t, nil
}

func (m *mockTimesheetRepository) GetByResourceID(resourceID int64, limit, offset int) ([]*timesheet.Timesheet, error) {
	result := make([]*timesheet.Timesheet, 0)
	for _, t := range m.timesheets {
		if t.ResourceID == resourceID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockTimesheetRepository) GetInPeriod(start, end time.Time) ([]*timesheet.Timesheet, error) {
	result := make([]*timesheet.Timesheet, 0)
	for _, t := range m.timesheets {
		if !t.WorkDate.Before(start) && !t.WorkDate.After(end) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockTimesheetRepository) Update(t *timesheet.Timesheet) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.timesheets[t.ID] = t
	return nil
}

var _ = Describe("TimesheetService", func() {
	var (
		service  *timesheet.Service
		mockRepo *mockTimesheetRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockTimesheetRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = timesheet.NewService(mockRepo, logger)
	})

	Describe("CreateTimesheet", func() {
		It("should create a draft entry", func() {
			dto := timesheet.CreateTimesheetDTO{
				ResourceID: 10,
				WorkDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				Hours:      8,
			}

			result, err := service.CreateTimesheet(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(BeNumerically(">", 0))
			Expect(result.Status).To(Equal(timesheet.StatusDraft))
		})

		It("should reject zero hours", func() {
			dto := timesheet.CreateTimesheetDTO{
				ResourceID: 10,
				WorkDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				Hours:      0,
			}

			_, err := service.CreateTimesheet(dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject more than 24 hours in a day", func() {
			dto := timesheet.CreateTimesheetDTO{
				ResourceID: 10,
				WorkDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				Hours:      25,
			}

			_, err := service.CreateTimesheet(dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("workflow transitions", func() {
		var created *timesheet.Timesheet

		BeforeEach(func() {
			var err error
			created, err = service.CreateTimesheet(timesheet.CreateTimesheetDTO{
				ResourceID: 10,
				WorkDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				Hours:      8,
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should submit a draft entry", func() {
			result, err := service.SubmitTimesheet(created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(timesheet.StatusSubmitted))
			Expect(result.SubmittedAt).ToNot(BeNil())
		})

		It("should validate a submitted entry", func() {
			_, err := service.SubmitTimesheet(created.ID)
			Expect(err).ToNot(HaveOccurred())

			result, err := service.ValidateTimesheet(created.ID, 99)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(timesheet.StatusValidated))
			Expect(result.ProcessedAt).ToNot(BeNil())
		})

		It("should reject a submitted entry", func() {
			_, err := service.SubmitTimesheet(created.ID)
			Expect(err).ToNot(HaveOccurred())

			result, err := service.RejectTimesheet(created.ID, 99, "wrong project")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(timesheet.StatusRejected))
		})

		It("should allow resubmission after rejection", func() {
			_, err := service.SubmitTimesheet(created.ID)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.RejectTimesheet(created.ID, 99, "wrong project")
			Expect(err).ToNot(HaveOccurred())

			result, err := service.SubmitTimesheet(created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(timesheet.StatusSubmitted))
		})

		It("should refuse validating a draft entry", func() {
			_, err := service.ValidateTimesheet(created.ID, 99)

			Expect(err).To(MatchError(timesheet.ErrInvalidTransition))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidStatus))
		})

		It("should refuse submitting twice", func() {
			_, err := service.SubmitTimesheet(created.ID)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.SubmitTimesheet(created.ID)

			Expect(err).To(MatchError(timesheet.ErrInvalidTransition))
		})

		It("should return not found for an unknown id", func() {
			_, err := service.SubmitTimesheet(12345)

			Expect(err).To(MatchError(timesheet.ErrTimesheetNotFound))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(appErr.Code).To(Equal(internal.ErrCodeTimesheetNotFound))
		})
	})

	Describe("Status", func() {
		It("should bill submitted and validated entries only", func() {
			Expect(timesheet.StatusSubmitted.Billable()).To(BeTrue())
			Expect(timesheet.StatusValidated.Billable()).To(BeTrue())
			Expect(timesheet.StatusDraft.Billable()).To(BeFalse())
			Expect(timesheet.StatusRejected.Billable()).To(BeFalse())
		})
	})
})

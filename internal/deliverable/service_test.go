package deliverable_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/core/events"
	"github.com/amsf/project-tracker/internal/deliverable"
)

func TestDeliverable(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Deliverable Suite")
}

// Mock repository for testing
type mockDeliverableRepository struct {
	deliverables map[int64]*deliverable.Deliverable
	updateError  error
	nextID       int64
}

func newMockDeliverableRepository() *mockDeliverableRepository {
	return &mockDeliverableRepository{
		deliverables: make(map[int64]*deliverable.Deliverable),
		nextID:       1,
	}
}

func (m *mockDeliverableRepository) Create(d *deliverable.Deliverable) error {
	d.ID = m.nextID
	m.nextID++
	m.deliverables[d.ID] = d
	return nil
}

func (m *mockDeliverableRepository) GetByID(id int64) (*deliverable.Deliverable, error) {
	d, exists := m.deliverables[id]
	if !exists {
		return nil, errors.New("deliverable not found")
	}
	return d, nil
}

func (m *mockDeliverableRepository) GetByPartnerID(partnerID int64) ([]*deliverable.Deliverable, error) {
	result := make([]*deliverable.Deliverable, 0)
	for _, d := range m.deliverables {
		if d.PartnerID == partnerID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDeliverableRepository) Update(d *deliverable.Deliverable) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.deliverables[d.ID] = d
	return nil
}

var _ = Describe("DeliverableService", func() {
	var (
		service  *deliverable.Service
		mockRepo *mockDeliverableRepository
		logger   *slog.Logger
		created  *deliverable.Deliverable
	)

	BeforeEach(func() {
		mockRepo = newMockDeliverableRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = deliverable.NewService(mockRepo, nil, logger)

		var err error
		created, err = service.CreateDeliverable(deliverable.CreateDeliverableDTO{
			PartnerID: 1,
			Name:      "Phase 1 delivery",
		})
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("sign-off", func() {
		It("should record one signature per party in either order", func() {
			d, err := service.SignAsPartner(created.ID, 7)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.PartnerSigned()).To(BeTrue())
			Expect(d.SupplierSigned()).To(BeFalse())

			d, err = service.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.FullySigned()).To(BeTrue())
			Expect(*d.SupplierSignedBy).To(Equal(int64(3)))
			Expect(*d.PartnerSignedBy).To(Equal(int64(7)))
		})

		It("should refuse a second signature from the same party", func() {
			_, err := service.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.SignAsSupplier(created.ID, 4)

			Expect(err).To(MatchError(deliverable.ErrAlreadySigned))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeAlreadySigned))
		})

		It("should return not found for an unknown deliverable", func() {
			_, err := service.SignAsSupplier(12345, 3)

			Expect(err).To(MatchError(deliverable.ErrDeliverableNotFound))
		})
	})

	Describe("IssueCertificate", func() {
		It("should refuse issuance until both parties have signed", func() {
			_, err := service.IssueCertificate(context.Background(), created.ID)
			Expect(err).To(MatchError(deliverable.ErrSignOffIncomplete))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(http.StatusUnprocessableEntity))
			Expect(appErr.Code).To(Equal(internal.ErrCodeSignOffIncomplete))

			_, err = service.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.IssueCertificate(context.Background(), created.ID)
			Expect(err).To(MatchError(deliverable.ErrSignOffIncomplete))
		})

		It("should issue once both signatures are present", func() {
			_, err := service.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.SignAsPartner(created.ID, 7)
			Expect(err).ToNot(HaveOccurred())

			d, err := service.IssueCertificate(context.Background(), created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(d.CertificateIssuedAt).ToNot(BeNil())
		})

		It("should refuse issuing twice", func() {
			_, err := service.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.SignAsPartner(created.ID, 7)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.IssueCertificate(context.Background(), created.ID)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.IssueCertificate(context.Background(), created.ID)

			Expect(err).To(MatchError(deliverable.ErrAlreadyCertified))
		})

		It("should deliver the certification event before returning", func() {
			bus := events.NewEventBus(logger)
			var audited []string
			bus.Subscribe(events.EventTypeDeliverableCertified, func(ctx context.Context, event events.Event) error {
				audited = append(audited, event.EventID())
				return nil
			})
			busService := deliverable.NewService(mockRepo, bus, logger)

			_, err := busService.SignAsSupplier(created.ID, 3)
			Expect(err).ToNot(HaveOccurred())
			_, err = busService.SignAsPartner(created.ID, 7)
			Expect(err).ToNot(HaveOccurred())

			_, err = busService.IssueCertificate(context.Background(), created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(audited).To(HaveLen(1))
		})
	})
})

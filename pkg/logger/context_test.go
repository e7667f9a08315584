package logger_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/pkg/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("context logger", func() {
	It("should fall back to the default logger when none is stored", func() {
		Expect(logger.From(context.Background())).To(BeIdenticalTo(logger.LoggerWrapper()))
	})

	It("should return the derived logger stored by With", func() {
		base := logger.From(context.Background())

		ctx := logger.With(context.Background(), "request_id", "req-123")

		derived := logger.From(ctx)
		Expect(derived).ToNot(BeNil())
		Expect(derived).ToNot(BeIdenticalTo(base))
	})

	It("should stack fields across nested With calls", func() {
		ctx := logger.With(context.Background(), "request_id", "req-123")
		inner := logger.With(ctx, "user_id", "1")

		Expect(logger.From(inner)).ToNot(BeIdenticalTo(logger.From(ctx)))
	})
})

package internal_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

var _ = Describe("request context", func() {
	Describe("user id", func() {
		It("should round-trip through the context", func() {
			ctx := internal.ContextWithUserID(context.Background(), "42")

			Expect(internal.UserIDFromContext(ctx)).To(Equal("42"))
		})

		It("should return empty when absent", func() {
			Expect(internal.UserIDFromContext(context.Background())).To(BeEmpty())
		})
	})

	Describe("WithTimeout", func() {
		It("should honor the requested duration", func() {
			ctx, cancel := internal.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically(">", 50*time.Second))
		})

		It("should default to five seconds for a non-positive duration", func() {
			ctx, cancel := internal.WithTimeout(context.Background(), 0)
			defer cancel()

			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(time.Until(deadline)).To(BeNumerically(">", 4*time.Second))
			Expect(time.Until(deadline)).To(BeNumerically("<=", 5*time.Second))
		})
	})
})

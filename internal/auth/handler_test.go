package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/auth"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		handler *auth.Handler
		service *auth.Service
	)

	BeforeEach(func() {
		mockRepo := newMockUserRepository()
		tokens := &auth.JWTTokenGenerator{
			AccessTokenSecret:  []byte("test-access-secret-at-least-32-chars!"),
			RefreshTokenSecret: []byte("test-refresh-secret-at-least-32-char!"),
			AccessTokenTTL:     15 * time.Minute,
			RefreshTokenTTL:    24 * time.Hour,
		}
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, tokens, slogger)
		handler = auth.NewHandler(service)

		mockRepo.addUser(&auth.User{
			ID:          1,
			Email:       "pm@example.com",
			Name:        "Project Manager",
			Permissions: []string{auth.PermGenerateInvoices},
		}, "correct-password")
	})

	It("should inject both the user and the plain user id into the context", func() {
		result, err := service.Authenticate(auth.LoginDTO{
			Email:    "pm@example.com",
			Password: "correct-password",
		})
		Expect(err).ToNot(HaveOccurred())

		var seenUserID string
		var seenUser *auth.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenUser, _ = auth.UserFromContext(r.Context())
			seenUserID = internal.UserIDFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+result.AccessToken)
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seenUser).ToNot(BeNil())
		Expect(seenUser.Email).To(Equal("pm@example.com"))
		Expect(seenUserID).To(Equal("1"))
	})

	It("should refuse a request without a bearer token", func() {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		w := httptest.NewRecorder()

		called := false
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(called).To(BeFalse())
	})
})

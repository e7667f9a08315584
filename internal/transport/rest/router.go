package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/amsf/project-tracker/internal/auth"
	"github.com/amsf/project-tracker/internal/deliverable"
	"github.com/amsf/project-tracker/internal/expense"
	"github.com/amsf/project-tracker/internal/invoice"
	"github.com/amsf/project-tracker/internal/partner"
	"github.com/amsf/project-tracker/internal/resource"
	"github.com/amsf/project-tracker/internal/timesheet"
	"github.com/amsf/project-tracker/internal/transport/middleware"
	"github.com/amsf/project-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	partnerHandler *partner.Handler,
	resourceHandler *resource.Handler,
	timesheetHandler *timesheet.Handler,
	expenseHandler *expense.Handler,
	invoiceHandler *invoice.Handler,
	deliverableHandler *deliverable.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				pr.Get("/users/me", authHandler.Me)

				// Partner routes
				if partnerHandler != nil {
					pr.Route("/partners", func(par chi.Router) {
						par.Get("/", partnerHandler.GetAllPartners)
						par.Get("/{id}", partnerHandler.GetPartner)

						par.Group(func(mr chi.Router) {
							mr.Use(auth.RequirePermission(auth.PermManagePartners))
							mr.Post("/", partnerHandler.CreatePartner)
						})

						// Invoice generation for one partner and period
						if invoiceHandler != nil {
							par.Group(func(ir chi.Router) {
								ir.Use(auth.RequirePermission(auth.PermGenerateInvoices))
								ir.Get("/{id}/invoice", invoiceHandler.GenerateInvoice)
								ir.Get("/{id}/invoice/export", invoiceHandler.ExportInvoiceCSV)
							})
						}

						if deliverableHandler != nil {
							par.Get("/{id}/deliverables", deliverableHandler.GetPartnerDeliverables)
						}
					})
				}

				// Resource routes
				if resourceHandler != nil {
					pr.Route("/resources", func(rr chi.Router) {
						rr.Get("/", resourceHandler.GetAllResources)
						rr.Get("/{id}", resourceHandler.GetResource)

						rr.Group(func(mr chi.Router) {
							mr.Use(auth.RequirePermission(auth.PermManagePartners))
							mr.Post("/", resourceHandler.CreateResource)
							mr.Patch("/{id}/sell-rate", resourceHandler.UpdateSellRate)
						})
					})
				}

				// Timesheet routes
				if timesheetHandler != nil {
					pr.Route("/timesheets", func(tr chi.Router) {
						tr.Post("/", timesheetHandler.CreateTimesheet)
						tr.Get("/{id}", timesheetHandler.GetTimesheet)
						tr.Post("/{id}/submit", timesheetHandler.SubmitTimesheet)

						tr.Group(func(mr chi.Router) {
							mr.Use(auth.RequirePermission(auth.PermValidateTimesheets))
							mr.Patch("/{id}/validate", timesheetHandler.ValidateTimesheet)
							mr.Patch("/{id}/reject", timesheetHandler.RejectTimesheet)
						})
					})
					pr.Get("/resources/{id}/timesheets", timesheetHandler.GetResourceTimesheets)
				}

				// Expense routes
				if expenseHandler != nil {
					pr.Route("/expenses", func(er chi.Router) {
						er.Post("/", expenseHandler.CreateExpense)
						er.Get("/{id}", expenseHandler.GetExpense)

						er.Group(func(mr chi.Router) {
							mr.Use(auth.RequirePermission(auth.PermGenerateInvoices))
							mr.Patch("/{id}/chargeable", expenseHandler.UpdateChargeable)
						})
					})
					pr.Get("/resources/{id}/expenses", expenseHandler.GetResourceExpenses)
				}

				// Deliverable sign-off routes
				if deliverableHandler != nil {
					pr.Route("/deliverables", func(dr chi.Router) {
						dr.Get("/{id}", deliverableHandler.GetDeliverable)

						dr.Group(func(mr chi.Router) {
							mr.Use(auth.RequirePermission(auth.PermManagePartners))
							mr.Post("/", deliverableHandler.CreateDeliverable)
							mr.Post("/{id}/certificate", deliverableHandler.IssueCertificate)
						})

						dr.Group(func(sr chi.Router) {
							sr.Use(auth.RequirePermission(auth.PermSignSupplier))
							sr.Post("/{id}/sign/supplier", deliverableHandler.SignAsSupplier)
						})

						dr.Group(func(sr chi.Router) {
							sr.Use(auth.RequirePermission(auth.PermSignPartner))
							sr.Post("/{id}/sign/partner", deliverableHandler.SignAsPartner)
						})
					})
				}
			})
		}
	})
}

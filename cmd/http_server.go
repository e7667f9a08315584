package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/auth"
	authPostgres "github.com/amsf/project-tracker/internal/auth/postgres"
	"github.com/amsf/project-tracker/internal/core/events"
	"github.com/amsf/project-tracker/internal/deliverable"
	deliverablePostgres "github.com/amsf/project-tracker/internal/deliverable/postgres"
	"github.com/amsf/project-tracker/internal/expense"
	expensePostgres "github.com/amsf/project-tracker/internal/expense/postgres"
	"github.com/amsf/project-tracker/internal/invoice"
	invoicePostgres "github.com/amsf/project-tracker/internal/invoice/postgres"
	"github.com/amsf/project-tracker/internal/partner"
	partnerPostgres "github.com/amsf/project-tracker/internal/partner/postgres"
	"github.com/amsf/project-tracker/internal/resource"
	resourcePostgres "github.com/amsf/project-tracker/internal/resource/postgres"
	"github.com/amsf/project-tracker/internal/timesheet"
	timesheetPostgres "github.com/amsf/project-tracker/internal/timesheet/postgres"
	"github.com/amsf/project-tracker/internal/transport/rest"
	"github.com/amsf/project-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	cfg := deps.Config
	gdb := deps.GormDB

	bus := events.NewEventBus(lg)
	registerAuditSubscribers(bus, lg)

	tokens := &auth.JWTTokenGenerator{
		AccessTokenSecret:  []byte(cfg.Security.AccessTokenSecret),
		RefreshTokenSecret: []byte(cfg.Security.RefreshTokenSecret),
		AccessTokenTTL:     cfg.Security.AccessTokenDuration,
		RefreshTokenTTL:    cfg.Security.RefreshTokenDuration,
	}

	authService := auth.NewService(authPostgres.NewAuthRepository(gdb), tokens, lg)
	authHandler := auth.NewHandler(authService)

	partnerService := partner.NewService(partnerPostgres.NewPartnerRepository(gdb), lg)
	partnerHandler := partner.NewHandler(partnerService)

	resourceService := resource.NewService(resourcePostgres.NewResourceRepository(gdb), lg)
	resourceHandler := resource.NewHandler(resourceService)

	timesheetService := timesheet.NewService(timesheetPostgres.NewTimesheetRepository(gdb), lg)
	timesheetHandler := timesheet.NewHandler(timesheetService)

	expenseService := expense.NewService(expensePostgres.NewExpenseRepository(gdb), lg)
	expenseHandler := expense.NewHandler(expenseService)

	invoiceService := invoice.NewService(invoicePostgres.NewInvoiceRepository(gdb), bus, lg)
	invoiceHandler := invoice.NewHandler(invoiceService)

	deliverableService := deliverable.NewService(deliverablePostgres.NewDeliverableRepository(gdb), bus, lg)
	deliverableHandler := deliverable.NewHandler(deliverableService)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		authHandler,
		partnerHandler,
		resourceHandler,
		timesheetHandler,
		expenseHandler,
		invoiceHandler,
		deliverableHandler,
		lg,
	)
}

// registerAuditSubscribers writes an audit log line for every billing event.
func registerAuditSubscribers(bus *events.EventBus, lg *slog.Logger) {
	bus.Subscribe(events.EventTypeInvoiceGenerated, func(ctx context.Context, event events.Event) error {
		lg.Info("audit: invoice generated", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypeDeliverableCertified, func(ctx context.Context, event events.Event) error {
		lg.Info("audit: deliverable certified", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.InitFromConfig(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		GormDB: gdb,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the already-open pgx connection so both layers share a pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}

package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/amsf/project-tracker/internal"
	"github.com/amsf/project-tracker/internal/invoice"
	invoicePostgres "github.com/amsf/project-tracker/internal/invoice/postgres"
	"github.com/amsf/project-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	invoiceCmd = &cobra.Command{
		RunE:  runInvoice,
		Use:   "invoice",
		Short: "Generate an invoice summary for a partner and period",
		Long:  `Compute the invoice summary for one partner over a billing period and print it as JSON or CSV.`,
	}
	invoicePartnerID int64
	invoiceMonth     string
	invoiceFrom      string
	invoiceTo        string
	invoiceCSV       bool
	invoiceOut       string
)

func init() {
	invoiceCmd.Flags().Int64Var(&invoicePartnerID, "partner", 0, "partner id (required)")
	invoiceCmd.Flags().StringVar(&invoiceMonth, "month", "", "billing month as YYYY-MM")
	invoiceCmd.Flags().StringVar(&invoiceFrom, "from", "", "period start as YYYY-MM-DD")
	invoiceCmd.Flags().StringVar(&invoiceTo, "to", "", "period end as YYYY-MM-DD")
	invoiceCmd.Flags().BoolVar(&invoiceCSV, "csv", false, "write CSV instead of JSON")
	invoiceCmd.Flags().StringVar(&invoiceOut, "out", "", "output file (default stdout)")
	invoiceCmd.MarkFlagRequired("partner")
}

func runInvoice(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.LoggerWrapper()

	period, err := invoice.PeriodFromQuery(invoiceMonth, invoiceFrom, invoiceTo)
	if err != nil {
		return err
	}

	sqlxDB, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}
	defer sqlxDB.Close()

	db, err := initGorm(sqlxDB)
	if err != nil {
		log.Fatalf("failed to init orm: %v", err)
	}

	service := invoice.NewService(invoicePostgres.NewInvoiceRepository(db), nil, lg)

	ctx, cancel := internal.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := service.GenerateInvoice(ctx, invoicePartnerID, period, "cli")
	if err != nil {
		return err
	}

	out := os.Stdout
	if invoiceOut != "" {
		f, err := os.Create(invoiceOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if invoiceCSV {
		return invoice.WriteCSV(out, summary)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// Command ledger_worker consumes payment and invoice events from RabbitMQ and
// records them in the general ledger.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/messaging/amqp"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/platform/wiring"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validateWorkerConfig(cfg); err != nil {
		logger.Error("Invalid event worker config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := wiring.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	logger.Info("Event worker started", slog.String("queue", cfg.AMQPEventsQueue))
	err = app.Broker.ConsumeBusinessEvents(ctx, newEventHandler(app.Services.Recorder, app.Services.LedgerEntry, logger))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Event worker stopped", slog.String("error", err.Error()))
		return
	}
	logger.Info("Event worker shut down")
}

// validateWorkerConfig rejects settings under which consumed events would be
// acked without reaching the shared ledger.
func validateWorkerConfig(cfg *config.Config) error {
	if !cfg.PublishesEvents() {
		return errors.New("AMQP_URL must be set to run the event worker")
	}
	if cfg.StorageBackend == config.StorageMemory {
		return fmt.Errorf("STORAGE_BACKEND=%s keeps postings inside the worker process; use %s", config.StorageMemory, config.StoragePostgres)
	}
	return nil
}

// newEventHandler routes each business event to its recorder. An event whose
// reference already has ledger rows is acked without posting again, so a
// redelivered message is recorded once.
func newEventHandler(recorder portssvc.BusinessEventRecorderSvc, entries portssvc.LedgerEntryReaderSvc, logger *slog.Logger) amqp.BusinessEventHandler {
	return func(ctx context.Context, msg *amqp.BusinessEventMessage) error {
		eventLogger := logger.With(slog.String("event_type", msg.Type), slog.String("event_id", msg.ID))
		ctx = middleware.WithLogger(ctx, eventLogger)

		var referenceType string
		switch msg.Type {
		case amqp.EventPaymentReceived:
			referenceType = domain.ReferencePayment
		case amqp.EventInvoiceIssued:
			referenceType = domain.ReferenceInvoice
		default:
			eventLogger.Warn("Ignoring unknown business event")
			return nil
		}

		existing, err := entries.FindEntriesByReference(ctx, referenceType, msg.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			eventLogger.Info("Business event already recorded", slog.String("document_number", existing[0].DocumentNumber))
			return nil
		}

		if referenceType == domain.ReferencePayment {
			_, err = recorder.RecordPaymentReceived(ctx, msg.Payment())
		} else {
			_, err = recorder.RecordInvoiceIssued(ctx, msg.Invoice())
		}
		if err != nil {
			return err
		}
		eventLogger.Info("Business event recorded")
		return nil
	}
}

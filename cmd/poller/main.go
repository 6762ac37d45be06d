package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapter/persistence/repository"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/payments"
	"storefront/internal/metrics"
	"storefront/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

const defaultPollInterval = 30 * time.Second

// The poller sweeps PENDING push-payment transactions on a fixed
// interval and reconciles each against the provider. It is the safety
// net for callbacks that never arrive.
func main() {
	interval := defaultPollInterval
	if v := os.Getenv("MPESA_POLL_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.WithError(err).Fatal("[mpesa][poller] invalid MPESA_POLL_INTERVAL")
		}
		interval = parsed
	}

	client, err := payments.NewMpesaClient(payments.MpesaConfigFromEnv())
	if err != nil {
		log.WithError(err).Fatal("[mpesa][poller] push payment gateway not configured")
	}

	ddb := database.ConnectDynamoDB()
	reconciler := usecase.NewMpesaReconcilerUseCase(
		repository.NewMpesaTransactionDynamoRepository(ddb),
		client,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.WithField("interval", interval.String()).Info("[mpesa][poller] started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("[mpesa][poller] shutting down")
			return
		case <-ticker.C:
			metrics.MpesaPollRunsTotal.Inc()
			if err := reconciler.ProcessPending(ctx); err != nil {
				log.WithError(err).Error("[mpesa][poller] sweep failed")
			}
		}
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/checkout"
	"github.com/Domenick1991/airport/internal/email"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/obs"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/payments"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg.Telemetry.ServiceName += "-worker"
	shutdownTracer, err := obs.InitTracer(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("init tracer: %v", err)
	}
	defer shutdownTracer(context.Background())

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	provider, err := checkout.New(cfg.Payments)
	if err != nil {
		log.Fatalf("checkout provider: %v", err)
	}
	paymentService := payments.NewPaymentService(
		repository.NewOrderRepository(pool),
		repository.NewPaymentRepository(pool),
		provider,
		cfg.Payments.UnitRate,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, kafka.NotificationHandler(emailSender.Send)); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sweep := time.Duration(cfg.Worker.ReconcileSweepMinutes) * time.Minute
	reconcileTicker := time.NewTicker(sweep)
	defer reconcileTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reconcileTicker.C:
			mismatches, err := paymentService.ReconcilePending(ctx, sweep, cfg.Worker.ReconcileBatch)
			if err != nil {
				log.Printf("reconcile payments error: %v", err)
				continue
			}
			if mismatches > 0 {
				log.Printf("reconcile found %d payment amount mismatches", mismatches)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/checkout"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/migrations"
	"github.com/Domenick1991/airport/internal/obs"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/booking"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/inventory"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := obs.InitTracer(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("init tracer: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			log.Printf("shutdown tracer: %v", err)
		}
	}()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ReferenceCacheTTLSecs)*time.Second)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("WARNING: redis unavailable, caching and seat holds degrade: %v", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.OrderEventsTopic, cfg.Kafka.NotificationsTopic)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Printf("WARNING: kafka unavailable, events will be dropped: %v", err)
	}

	provider, err := checkout.New(cfg.Payments)
	if err != nil {
		log.Fatalf("checkout provider: %v", err)
	}

	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	inventoryService := inventory.NewInventoryService(
		repository.NewAircraftRepository(pool),
		repository.NewAirlineRepository(pool),
		repository.NewAirportRepository(pool),
		repository.NewCrewRepository(pool),
		repository.NewRouteRepository(pool),
		inventory.WithCache(redisCache),
	)
	flightService := flights.NewFlightService(flightRepo)
	bookingService := booking.NewBookingService(
		orderRepo,
		flightRepo,
		booking.WithSeatHolds(redisCache, time.Duration(cfg.Booking.SeatHoldSeconds)*time.Second),
		booking.WithProducer(producer),
	)
	paymentService := payments.NewPaymentService(
		orderRepo,
		repository.NewPaymentRepository(pool),
		provider,
		cfg.Payments.UnitRate,
		payments.WithProducer(producer),
	)

	router := api.NewRouter(api.Handlers{
		Inventory: api.NewInventoryHandler(inventoryService),
		Flights:   api.NewFlightHandler(flightService),
		Orders:    api.NewOrderHandler(bookingService, paymentService),
		Payments:  api.NewPaymentHandler(paymentService),
		Users:     repository.NewUserRepository(pool),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

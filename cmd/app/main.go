package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cargotracker/cmd"
	httpadapter "cargotracker/internal/adapters/in/http"
	rabbitconsumer "cargotracker/internal/adapters/in/rabbitmq"
	"cargotracker/internal/adapters/out/kafka"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/rabbitmq"
	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/jobs"
	"cargotracker/internal/platform/otel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "cargotracker"
	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, otel.Config{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		ServiceName: serviceName,
	})
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	gormDB, sqlDB, err := cmd.OpenDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	pathFinder, err := routing.NewHTTPPathFinder(cfg.PathfinderURL, logger)
	if err != nil {
		log.Fatalf("Error creating path finder client: %v", err)
	}
	routingService := routing.NewExternalRoutingService(
		routing.NewCachingPathFinder(pathFinder, redisClient, cfg.RouteCacheTTL, logger),
		logger,
	)

	signals := kafka.NewSignalPublisher(cfg.KafkaBrokers, cfg.KafkaSignalsTopic, logger)
	defer signals.Close()

	rabbit, err := rabbitmq.NewClient(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer rabbit.Close()

	if err := rabbit.DeclareQueue(cfg.RabbitMQHandlingQueue); err != nil {
		log.Fatalf("Error declaring queue %s: %v", cfg.RabbitMQHandlingQueue, err)
	}

	app := cmd.NewCompositionRoot(gormDB, routingService, signals, logger)

	if cfg.SeedSampleData {
		if err := postgres.SeedSampleData(ctx, app.UnitOfWorkFactory()); err != nil {
			log.Fatalf("Error seeding sample data: %v", err)
		}
	}

	e, err := newWebServer(ctx, &app, rabbitmq.NewAttemptPublisher(rabbit, cfg.RabbitMQHandlingQueue), logger)
	if err != nil {
		log.Fatalf("Error creating web server: %v", err)
	}

	deliveries, err := rabbit.Consume(cfg.RabbitMQHandlingQueue, serviceName, cfg.RabbitMQPrefetch)
	if err != nil {
		log.Fatalf("Error consuming %s: %v", cfg.RabbitMQHandlingQueue, err)
	}
	consumer := rabbitconsumer.NewRegistrationConsumer(app.CreateRegisterHandlingEventCommandHandler(), logger)

	jobManager := jobs.NewJobManager(
		jobs.NewOutboxRelayJob(app.CreateRelaySignalsCommandHandler(), cfg.OutboxCron, cfg.OutboxBatchSize, logger),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", "port", cfg.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return consumer.Run(gctx, deliveries)
	})

	if err := g.Wait(); err != nil {
		logger.Error("cargotracker stopped with error", "error", err)
		return
	}
	logger.Info("cargotracker stopped")
}

func newWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	reports *rabbitmq.AttemptPublisher,
	logger *slog.Logger,
) (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		BookNewCargo:          app.CreateBookNewCargoCommandHandler(),
		AssignCargoToRoute:    app.CreateAssignCargoToRouteCommandHandler(),
		ChangeDestination:     app.CreateChangeDestinationCommandHandler(),
		ChangeDeadline:        app.CreateChangeDeadlineCommandHandler(),
		InspectCargo:          app.CreateInspectCargoCommandHandler(),
		RequestPossibleRoutes: app.CreateRequestPossibleRoutesQueryHandler(),
		ListShippingLocations: app.CreateListShippingLocationsQueryHandler(),
		ListCargos:            app.CreateListCargosQueryHandler(),
		GetCargoTracking:      app.CreateGetCargoTrackingQueryHandler(),
		HandlingReports:       reports,
	}, logger)

	doc, err := httpadapter.LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(server, doc, logger)
}

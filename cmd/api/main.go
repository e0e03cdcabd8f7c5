package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/revkae/hotel-management/internal/api/http"
	"github.com/revkae/hotel-management/internal/api/http/handlers"
	"github.com/revkae/hotel-management/internal/auth"
	"github.com/revkae/hotel-management/internal/config"
	"github.com/revkae/hotel-management/internal/events"
	"github.com/revkae/hotel-management/internal/observability"
	"github.com/revkae/hotel-management/internal/persistence"
	"github.com/revkae/hotel-management/internal/repository"
	"github.com/revkae/hotel-management/internal/service"
	"github.com/revkae/hotel-management/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	channel, err := persistence.NewChannel(cfg.Channel, logger)
	if err != nil {
		logger.Fatal("failed to configure event channel", zap.Error(err))
	}
	defer channel.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	hotelRepo := repository.NewHotelRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	publisher := events.NewPublisher(channel.Client(), channel.Queue())
	dispatcher := events.NewDispatcher(logger)
	worker.RegisterEventHandlers(dispatcher, logger)
	if channel.Enabled() {
		consumer := events.NewConsumer(channel.Client(), channel.Queue(), dispatcher, logger)
		consumer.Start(ctx)
	}

	reservationService := service.NewReservationService(service.ReservationDependencies{
		ReservationRepo: reservationRepo,
		Publisher:       publisher,
		Logger:          logger,
	})
	userService := service.NewUserService(userRepo, reservationRepo, cfg.Auth.BcryptCost)
	hotelService := service.NewHotelService(hotelRepo, reservationRepo)
	authService := service.NewAuthService(cfg.Auth, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Home:           handlers.NewHomeHandler(),
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Env, pg, channel),
		Users:          handlers.NewUsersHandler(userService, authService),
		Hotels:         handlers.NewHotelsHandler(hotelService),
		Reservations:   handlers.NewReservationsHandler(reservationService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

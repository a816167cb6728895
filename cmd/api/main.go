package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/vacation-service/internal/api/http"
	"github.com/spec-kit/vacation-service/internal/api/http/handlers"
	"github.com/spec-kit/vacation-service/internal/config"
	"github.com/spec-kit/vacation-service/internal/events"
	"github.com/spec-kit/vacation-service/internal/observability"
	"github.com/spec-kit/vacation-service/internal/repository"
	"github.com/spec-kit/vacation-service/internal/service"
	"github.com/spec-kit/vacation-service/internal/worker"
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

	seed, err := repository.LoadSeed(cfg.Seed.File)
	if err != nil {
		logger.Fatal("failed to load seed data", zap.Error(err))
	}

	store := repository.NewMemoryStore(seed)
	employeeRepo := repository.NewEmployeeRepository(store)
	managerRepo := repository.NewManagerRepository(store)
	requestRepo := repository.NewRequestRepository(store)

	dispatcher := events.NewInMemoryDispatcher()
	vacationService := service.NewVacationService(service.VacationDependencies{
		EmployeeRepo: employeeRepo,
		ManagerRepo:  managerRepo,
		RequestRepo:  requestRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, employeeRepo, managerRepo, requestRepo)
	employeesHandler := handlers.NewEmployeesHandler(vacationService)
	managersHandler := handlers.NewManagersHandler(vacationService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Employees: employeesHandler,
		Managers:  managersHandler,
	})

	logger.Info("starting server",
		zap.String("addr", cfg.App.Addr()),
		zap.Int("seed_employees", len(seed.Employees)),
		zap.Int("seed_managers", len(seed.Managers)))

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

// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "pahana-billing/internal/api"
	"pahana-billing/internal/api/handler"
	"pahana-billing/internal/config"
	"pahana-billing/internal/repository"
	"pahana-billing/internal/repository/postgres"
	"pahana-billing/internal/service"
	"pahana-billing/internal/util"
	"pahana-billing/pkg/db"
)

// Application holds all the initialized components of the API variant.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	CustomerRepository repository.CustomerRepository
	ItemRepository     repository.ItemRepository
	BillRepository     repository.BillRepository

	// Services
	CustomerService service.CustomerService
	ItemService     service.ItemService
	BillingService  service.BillingService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.EnsureSchema(ctx, database); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.CustomerRepository = postgres.NewCustomerRepository()
	app.ItemRepository = postgres.NewItemRepository()
	app.BillRepository = postgres.NewBillRepository()
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.CustomerService = service.NewCustomerService(app.DB, app.CustomerRepository)
	app.ItemService = service.NewItemService(app.DB, app.ItemRepository)
	app.BillingService = service.NewBillingService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.CustomerRepository,
		app.ItemRepository,
		app.BillRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	app.HTTPHandler = router.NewRouter(
		handler.NewCustomerHandler(app.CustomerService, app.Logger),
		handler.NewItemHandler(app.ItemService, app.Logger),
		handler.NewBillHandler(app.BillingService, app.Logger),
		app.Logger,
	)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

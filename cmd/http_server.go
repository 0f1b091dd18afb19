package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
	authpg "github.com/megapark/hotel-backend/internal/auth/postgres"
	"github.com/megapark/hotel-backend/internal/booking"
	bookingpg "github.com/megapark/hotel-backend/internal/booking/postgres"
	"github.com/megapark/hotel-backend/internal/core/events"
	"github.com/megapark/hotel-backend/internal/email"
	"github.com/megapark/hotel-backend/internal/hall"
	hallpg "github.com/megapark/hotel-backend/internal/hall/postgres"
	"github.com/megapark/hotel-backend/internal/menu"
	menupg "github.com/megapark/hotel-backend/internal/menu/postgres"
	"github.com/megapark/hotel-backend/internal/order"
	orderpg "github.com/megapark/hotel-backend/internal/order/postgres"
	"github.com/megapark/hotel-backend/internal/payment"
	"github.com/megapark/hotel-backend/internal/payment/mpesa"
	"github.com/megapark/hotel-backend/internal/room"
	roompg "github.com/megapark/hotel-backend/internal/room/postgres"
	"github.com/megapark/hotel-backend/internal/transport/rest"
	"github.com/megapark/hotel-backend/internal/transport/swagger"
	"github.com/megapark/hotel-backend/internal/user"
	userpg "github.com/megapark/hotel-backend/internal/user/postgres"
	"github.com/megapark/hotel-backend/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type repositories struct {
	credentials auth.CredentialStore
	users       user.Repository
	rooms       room.Repository
	halls       hall.Repository
	menu        menu.Repository
	orders      order.Repository
	bookings    booking.Repository
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", slog.String("address", addr))

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", slog.String("error", err.Error()))
		}
		if deps.DB != nil {
			if err := deps.DB.Close(); err != nil {
				deps.Logger.Error("database close error", slog.String("error", err.Error()))
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	if cfg.Security.UsesDefaultSecrets() {
		lg.Warn("JWT secrets are using built-in development defaults, set JWT_SECRET and JWT_REFRESH_SECRET in production")
	}

	var sqlDB *sqlx.DB
	var repos *repositories

	if cfg.Database.UsesPostgres() {
		sqlDB, err = initDB(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open gorm connection: %w", err)
		}
		repos = postgresRepositories(gormDB)
		lg.Info("storage backend: postgres")
	} else {
		repos, err = fileRepositories(cfg.Storage.DataDir, cfg.Security.BCryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		lg.Info("storage backend: json files", slog.String("data_dir", cfg.Storage.DataDir))
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		lg.Warn("openapi spec validation failed", slog.String("error", err.Error()))
	}

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessSecret,
		cfg.Security.RefreshSecret,
		cfg.Security.AccessTokenTTL,
		cfg.Security.RefreshTokenTTL,
	)
	authService := auth.NewService(repos.credentials, tokenGen, lg)
	gate := auth.NewRoleGate(lg)

	bus := events.NewBus(lg)
	bookingService := booking.NewService(repos.bookings, lg)
	bookingService.RegisterEventHandlers(bus)

	mailer := email.NewLogSender(lg, cfg.Email.From)
	mpesaClient := mpesa.NewClient(
		cfg.Payment.ConsumerKey,
		cfg.Payment.ConsumerSecret,
		cfg.Payment.SimulatedDelay,
		lg,
	)

	handlers := rest.Handlers{
		Auth:    auth.NewHandler(authService),
		Users:   user.NewHandler(user.NewService(repos.users, cfg.Security.BCryptCost, lg)),
		Rooms:   room.NewHandler(room.NewService(repos.rooms, lg)),
		Halls:   hall.NewHandler(hall.NewService(repos.halls, mailer, cfg.Email.SalesEmail, lg)),
		Menu:    menu.NewHandler(menu.NewService(repos.menu, lg)),
		Orders:  order.NewHandler(order.NewService(repos.orders, lg)),
		Booking: booking.NewHandler(bookingService),
		Payment: payment.NewHandler(payment.NewService(repos.bookings, mpesaClient, bus, lg)),
	}

	router := chi.NewRouter()
	var rawDB *sql.DB
	if sqlDB != nil {
		rawDB = sqlDB.DB
	}
	rest.RegisterAllRoutes(router, rawDB, cfg.Storage.DataDir, handlers, gate, cfg.Server.AllowedOrigins, lg)

	return &Dependencies{
		Config: cfg,
		DB:     sqlDB,
		Router: router,
		Logger: lg,
	}, nil
}

func postgresRepositories(db *gorm.DB) *repositories {
	return &repositories{
		credentials: authpg.NewCredentialStore(db),
		users:       userpg.NewUserRepository(db),
		rooms:       roompg.NewRoomRepository(db),
		halls:       hallpg.NewHallRepository(db),
		menu:        menupg.NewMenuRepository(db),
		orders:      orderpg.NewOrderRepository(db),
		bookings:    bookingpg.NewBookingRepository(db),
	}
}

func fileRepositories(dataDir string, bcryptCost int) (*repositories, error) {
	creds, err := auth.NewFileCredentialStore(dataDir)
	if err != nil {
		return nil, err
	}
	users, err := user.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}
	if err := users.EnsureSeedAdmin(bcryptCost); err != nil {
		return nil, err
	}
	rooms, err := room.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}
	halls, err := hall.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}
	menuItems, err := menu.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}
	orders, err := order.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}
	bookings, err := booking.NewFileRepository(dataDir)
	if err != nil {
		return nil, err
	}

	return &repositories{
		credentials: creds,
		users:       users,
		rooms:       rooms,
		halls:       halls,
		menu:        menuItems,
		orders:      orders,
		bookings:    bookings,
	}, nil
}

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

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

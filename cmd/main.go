package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/cancel_appointment"
	checkoutHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/checkout"
	createAppointmentHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/get_appointment"
	getCustomerAppointmentsHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/get_customer_appointments"
	paymentWebhookHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/payment_webhook"
	validateSlotHandler "github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers/validate_slot"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/middleware"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/config"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	appointmentRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/appointment"
	customerRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/customer"
	orderRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/order"
	salonRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/salon"
	voucherRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/voucher"
	identityClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/identity"
	mailClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
	paymentsClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
	appointmentsService "github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments"
	checkoutUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/checkout"
	completeOrderUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/complete_order"
	createAppointmentUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/create_appointment"
	validateSlotUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/validate_slot"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/logger"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/metrics"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/txmanager"
)

// Storage surfaces main needs from either backend. The Postgres and
// in-memory implementations both satisfy them.
type appointmentStorage interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListScheduledBySalon(ctx context.Context, salonID string) ([]*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id string, reason *string, cancelledAt time.Time) (*domain.Appointment, error)
	CountCompletedSince(ctx context.Context, customerID string, since time.Time) (int, error)
}

type customerStorage interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByProfile(ctx context.Context, salonID, profileID string) (*domain.Customer, error)
	UpdateLoyalty(ctx context.Context, id string, tier domain.LoyaltyTier, pointsEarned int) error
}

type voucherStorage interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	MarkRedeemed(ctx context.Context, code string, redeemedAt time.Time) error
}

type orderStorage interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
	TotalPaidByCustomer(ctx context.Context, customerID string) (float64, error)
}

type salonStorage interface {
	GetBookingPolicy(ctx context.Context, salonID string) (*domain.BookingPolicy, error)
	GetService(ctx context.Context, salonID, serviceID string) (*domain.Service, error)
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SWK-SalonService...")

	var metricsCollector *metrics.Metrics
	var domainMetrics metrics.Recorder = metrics.Nop{}
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		domainMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Storage backend
	var (
		appointmentStore appointmentStorage
		customerStore    customerStorage
		voucherStore     voucherStorage
		orderStore       orderStorage
		salonStore       salonStorage
		txMgr            txManager
	)

	if cfg.Storage.Mode == config.StorageModeMemory {
		log.Warn("Storage mode is %q: all data is lost on restart", cfg.Storage.Mode)

		appointmentStore = appointmentRepo.NewInMemory()
		customerStore = customerRepo.NewInMemory()
		voucherStore = voucherRepo.NewInMemory(demoVouchers()...)
		orderStore = orderRepo.NewInMemory()
		salonStore = salonRepo.NewInMemory(demoServices()...)
		txMgr = txmanager.Passthrough{}
	} else {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		appointmentStore = appointmentRepo.NewPostgres(db)
		customerStore = customerRepo.NewPostgres(db)
		voucherStore = voucherRepo.NewPostgres(db)
		orderStore = orderRepo.NewPostgres(db)
		salonStore = salonRepo.NewPostgres(db)
		txMgr = txmanager.NewTransactionManager(db)
	}

	// Integration clients
	identity := identityClient.NewClient(cfg.Identity.URL, time.Duration(cfg.Identity.Timeout)*time.Second, log)
	payments := paymentsClient.NewClient(cfg.Payments.URL, cfg.Payments.WebhookSecret,
		time.Duration(cfg.Payments.Timeout)*time.Second, log)
	mailer := mailClient.NewClient(cfg.Mail.URL, time.Duration(cfg.Mail.Timeout)*time.Second, log)
	log.Info("Integration clients initialized (identity=%s, payments=%s, mail=%s)",
		cfg.Identity.URL, cfg.Payments.URL, cfg.Mail.URL)

	// Services and use cases
	appointmentSvc := appointmentsService.NewService(appointmentStore, customerStore, mailer, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentStore, customerStore, salonStore, identity, mailer, txMgr, domainMetrics, log)
	validateSlotUseCase := validateSlotUC.NewUseCase(appointmentStore, salonStore, log)
	checkoutUseCase := checkoutUC.NewUseCase(voucherStore, orderStore, payments, txMgr, domainMetrics, log)
	completeOrderUseCase := completeOrderUC.NewUseCase(
		orderStore, customerStore, appointmentStore, payments, mailer, txMgr, domainMetrics, log)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	validateSlot := validateSlotHandler.NewHandler(validateSlotUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(completeOrderUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/appointments/validate-slot", validateSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/webhooks/payments", paymentWebhook.Handle).Methods(http.MethodPost)

	// Protected routes (require X-Customer-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/shop/checkout", checkout.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// demoServices seeds the in-memory salon store for local development.
func demoServices() []domain.Service {
	return []domain.Service{
		{ID: "srv-haarschnitt", SalonID: "salon-schnittwerk", Name: "Haarschnitt", DurationMinutes: 45, PriceChf: 65, Active: true},
		{ID: "srv-farbe", SalonID: "salon-schnittwerk", Name: "Farbe & Pflege", DurationMinutes: 90, PriceChf: 140, Active: true},
		{ID: "srv-bart", SalonID: "salon-schnittwerk", Name: "Bartpflege", DurationMinutes: 30, PriceChf: 40, Active: true},
	}
}

// demoVouchers seeds the in-memory voucher store for local development.
func demoVouchers() []domain.Voucher {
	return []domain.Voucher{
		{Code: "WILLKOMMEN10", AmountChf: 10, ExpiresAt: time.Now().AddDate(1, 0, 0)},
		{Code: "SOMMER25", AmountChf: 25, ExpiresAt: time.Now().AddDate(0, 3, 0)},
	}
}

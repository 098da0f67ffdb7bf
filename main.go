// File: doctorsportal/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes builds every index. A failure on required is returned; failures on optional
// are only logged.
func ensureIndexes(ctx context.Context, logger *zap.Logger, required indexer, optional ...indexer) error {
	if err := required.EnsureIndexes(ctx); err != nil {
		return err
	}
	for _, repo := range optional {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.Error(err))
		}
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("main: invalid configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: database unavailable", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DatabaseName)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	// repositories.
	services := serviceRepo.NewMongoServiceRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepo.NewMongoUserRepo(db)
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	payments := paymentRepo.NewMongoPaymentRepo(db)

	if err := ensureIndexes(rootCtx, logger, bookings, services, users, doctors); err != nil {
		logger.Fatal("main: booking uniqueness index unavailable, refusing to start", zap.Error(err))
	}

	// Redis backs the admin role cache; the server runs without it.
	var redisClients []*redis.Client
	var roles user.RoleCache
	cacheClient, err := utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Warn("main: role cache disabled", zap.Error(err))
	} else {
		redisClients = append(redisClients, cacheClient)
		roles = utils.NewRoleCache(cacheClient, cfg.RoleCacheTTL)
	}

	// Emails go through the asynq queue when enabled.
	var notifier notification.Notifier = notification.NoopNotifier{}
	var emailWorker *cron.EmailWorker
	var queueClient *asynq.Client
	if cfg.EmailEnabled {
		queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queueClient = asynq.NewClient(queueOpts)
		notifier = notification.NewQueueNotifier(queueClient, logger)

		sender := &notification.EmailSender{
			Mailer:        notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
			From:          cfg.EmailSender,
			ClinicAddress: cfg.ClinicAddress,
		}
		emailWorker = cron.NewEmailWorker(queueOpts, sender, logger)
		emailWorker.Start()

		queueRedis, err := utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB)
		if err != nil {
			logger.Warn("main: email queue Redis unreachable, tasks will be retried", zap.Error(err))
		} else {
			redisClients = append(redisClients, queueRedis)
			go cron.MonitorRedisConnection(rootCtx, queueRedis, logger)
		}
	}

	stripe.Key = cfg.StripeKey
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// services.
	bookingService := &booking.DefaultBookingService{
		Services:    services,
		Bookings:    bookings,
		Payments:    payments,
		Notifier:    notifier,
		Policy:      booking.AdmissionPolicy{StrictSlots: cfg.StrictSlotAdmission},
		Logger:      logger,
		DefaultDate: cfg.DefaultAvailabilityDate,
		Currency:    cfg.PaymentCurrency,
	}
	userService := user.NewDefaultUserService(users, tokens, roles, logger)
	doctorService := doctor.NewDefaultDoctorService(doctors, logger)
	paymentHandler := booking.NewPaymentHandler(logger, cfg.PaymentCurrency)

	healthMonitor := utils.NewHealthMonitor(mongoClient, redisClients, 30*time.Second)
	healthMonitor.Start(rootCtx)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:  tokens,
		Roles:   userService,
		Health:  handlers.NewHealthHandler(healthMonitor),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(paymentHandler),
		User:    handlers.NewUserHandler(userService),
		Doctor:  handlers.NewDoctorHandler(doctorService),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Doctors portal listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	stop()
	if emailWorker != nil {
		emailWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	for _, c := range redisClients {
		_ = c.Close()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

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

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	bookingRequestsHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/booking_requests"
	checkAvailabilityHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/check_availability"
	createBlockedDateHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/create_booking"
	createTeamUserHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/create_team_user"
	deleteBlockedDateHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/delete_blocked_date"
	deleteBookingHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/delete_booking"
	deleteImageHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/delete_image"
	deleteTeamUserHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/delete_team_user"
	getBookingHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/get_booking"
	getMeHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/get_me"
	imageFileHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/image_file"
	listAccommodationsHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/list_accommodations"
	listBlockedDatesHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/list_blocked_dates"
	listBookingsHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/list_bookings"
	listImagesHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/list_images"
	listTeamUsersHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/list_team_users"
	loginHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/login"
	logoutHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/logout"
	teamBookingsHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/team_bookings"
	updateAccommodationHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/update_accommodation"
	updateBookingHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/update_booking"
	updateImagesHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/update_images"
	updateTeamUserHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/update_team_user"
	uploadImageHandler "github.com/Liandro13/method-passion-site/internal/api/handlers/upload_image"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/auth/jwks"
	"github.com/Liandro13/method-passion-site/internal/config"
	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/infra/blobstore"
	"github.com/Liandro13/method-passion-site/internal/infra/imagecache"
	accommodationRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/accommodation"
	blockedDateRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/blockeddate"
	bookingRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/booking"
	imageRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/image"
	sessionRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/session"
	teamUserRepo "github.com/Liandro13/method-passion-site/internal/infra/storage/teamuser"
	"github.com/Liandro13/method-passion-site/internal/jobs"
	accommodationsService "github.com/Liandro13/method-passion-site/internal/service/accommodations"
	availabilityService "github.com/Liandro13/method-passion-site/internal/service/availability"
	blockedDatesService "github.com/Liandro13/method-passion-site/internal/service/blockeddates"
	bookingsService "github.com/Liandro13/method-passion-site/internal/service/bookings"
	imagesService "github.com/Liandro13/method-passion-site/internal/service/images"
	sessionsService "github.com/Liandro13/method-passion-site/internal/service/sessions"
	teamUsersService "github.com/Liandro13/method-passion-site/internal/service/teamusers"
	checkAvailabilityUC "github.com/Liandro13/method-passion-site/internal/usecase/check_availability"
	createBookingUC "github.com/Liandro13/method-passion-site/internal/usecase/create_booking"
	updateBookingUC "github.com/Liandro13/method-passion-site/internal/usecase/update_booking"
	"github.com/Liandro13/method-passion-site/pkg/dbmetrics"
	"github.com/Liandro13/method-passion-site/pkg/logger"
	"github.com/Liandro13/method-passion-site/pkg/metrics"
	"github.com/Liandro13/method-passion-site/pkg/simpletxmanager"
	"github.com/Liandro13/method-passion-site/pkg/txmanager"
)

// TxManager is what services and use cases need from either transaction manager
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := "config.toml"
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok && path != "" {
		configPath = path
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting stay admin service...")
	log.Info("Configuration loaded from %s (auth mode=%s)", configPath, cfg.Auth.Mode)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager share one executor, measured or plain
	var (
		executor dbmetrics.DBExecutor
		txMgr    TxManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	blockedDateRepository := blockedDateRepo.NewRepository(executor)
	accommodationRepository := accommodationRepo.NewRepository(executor)
	imageRepository := imageRepo.NewRepository(executor)
	teamUserRepository := teamUserRepo.NewRepository(executor)
	sessionRepository := sessionRepo.NewRepository(executor)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	blobs, err := blobstore.NewFromConfig(startupCtx, cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize blob store: %v", err)
	}
	log.Info("Blob store initialized (bucket=%s, endpoint=%s)", cfg.Storage.Bucket, cfg.Storage.Endpoint)

	// Services
	availabilitySvc := availabilityService.NewService(bookingRepository, blockedDateRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	blockedDateSvc := blockedDatesService.NewService(blockedDateRepository, log)
	accommodationSvc := accommodationsService.NewService(accommodationRepository, imageRepository, log)
	teamUserSvc := teamUsersService.NewService(teamUserRepository, sessionRepository, txMgr, log)
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		teamUserRepository,
		sessionsService.AdminCredentials{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		time.Duration(cfg.Auth.AdminSessionHours)*time.Hour,
		time.Duration(cfg.Auth.TeamSessionHours)*time.Hour,
		log,
	)

	maxUploadBytes := int64(cfg.Storage.MaxUploadMB) << 20
	imageSvc := imagesService.NewService(imageRepository, accommodationRepository, blobs, txMgr, maxUploadBytes, log)

	if cfg.Cache.Enabled {
		cache, redisClient, err := imagecache.NewFromURL(startupCtx, cfg.Cache.RedisURL, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		imageSvc = imageSvc.WithCache(cache)
		log.Info("Image cache enabled (ttl=%dm)", cfg.Cache.TTLMinutes)
	}

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		accommodationRepository,
		availabilitySvc,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(accommodationRepository, availabilitySvc, log)

	// Identity resolution, one implementation per deployment
	policy := auth.NewRolePolicy(cfg.Auth.JWKS.AdminSubjects)

	var resolver auth.Resolver
	switch cfg.Auth.Mode {
	case config.AuthModeJWKS:
		keySet := jwks.NewKeySet(
			cfg.Auth.JWKS.URL,
			time.Duration(cfg.Auth.JWKS.CacheTTLSeconds)*time.Second,
			time.Duration(cfg.Auth.JWKS.Timeout)*time.Second,
			log,
		)
		resolver = jwks.NewResolver(keySet, policy, log)
		log.Info("Identity resolved from JWKS tokens (url=%s)", cfg.Auth.JWKS.URL)
	default:
		resolver = auth.NewSessionResolver(sessionRepository, teamUserRepository, policy, cfg.Auth.AdminUsername, log)
		log.Info("Identity resolved from session rows")
	}

	adminCookie := handlers.CookieSettings{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure, SameSite: http.SameSiteLaxMode}
	teamCookie := handlers.CookieSettings{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure, SameSite: http.SameSiteStrictMode}

	// Handlers
	listAccommodations := listAccommodationsHandler.NewHandler(accommodationSvc, log)
	updateAccommodation := updateAccommodationHandler.NewHandler(accommodationSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	bookingRequests := bookingRequestsHandler.NewHandler(createBookingUseCase, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	teamBookings := teamBookingsHandler.NewHandler(bookingSvc, log)

	listBlockedDates := listBlockedDatesHandler.NewHandler(blockedDateSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(blockedDateSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(blockedDateSvc, log)

	listImages := listImagesHandler.NewHandler(imageSvc, log)
	uploadImage := uploadImageHandler.NewHandler(imageSvc, log, maxUploadBytes)
	updateImages := updateImagesHandler.NewHandler(imageSvc, log)
	deleteImage := deleteImageHandler.NewHandler(imageSvc, log)
	imageFile := imageFileHandler.NewHandler(imageSvc, log)

	listTeamUsers := listTeamUsersHandler.NewHandler(teamUserSvc, log)
	createTeamUser := createTeamUserHandler.NewHandler(teamUserSvc, log)
	updateTeamUser := updateTeamUserHandler.NewHandler(teamUserSvc, log)
	deleteTeamUser := deleteTeamUserHandler.NewHandler(teamUserSvc, log)

	adminLogin := loginHandler.NewAdminHandler(sessionSvc, cfg.Auth.CookieName, cfg.Auth.CookieSecure, log)
	teamLogin := loginHandler.NewTeamHandler(sessionSvc, cfg.Auth.CookieName, cfg.Auth.CookieSecure, log)
	adminLogout := logoutHandler.NewHandler(sessionSvc, adminCookie, log)
	teamLogout := logoutHandler.NewHandler(sessionSvc, teamCookie, log)
	getMe := getMeHandler.NewHandler(log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identify(resolver, cfg.Auth.CookieName))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/accommodations", listAccommodations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/check-availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-requests", bookingRequests.Handle).Methods(http.MethodPost)
	api.HandleFunc("/images", listImages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/images/file/{key:.*}", imageFile.Handle).Methods(http.MethodGet, http.MethodHead)

	// Logins only exist where this service issues the sessions itself
	if cfg.Auth.Mode == config.AuthModeSession {
		api.HandleFunc("/auth/login", adminLogin.Handle).Methods(http.MethodPost)
		api.HandleFunc("/team/login", teamLogin.Handle).Methods(http.MethodPost)
	}
	api.HandleFunc("/auth/logout", adminLogout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/team/logout", teamLogout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)
	api.HandleFunc("/team/me", getMe.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN + TEAM ROUTES (scoped by allowed accommodations)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleTeam))

	staff.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	staff.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)

	staff.HandleFunc("/team/bookings", teamBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/accommodations", updateAccommodation.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/blocked-dates/{id:[0-9]+}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/images", uploadImage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/images", updateImages.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/images", deleteImage.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/team-users", listTeamUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/team-users", createTeamUser.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/team-users/{id:[0-9]+}", updateTeamUser.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/team-users/{id:[0-9]+}", deleteTeamUser.Handle).Methods(http.MethodDelete)

	// Housekeeping
	scheduler, err := jobs.NewScheduler(log)
	if err != nil {
		log.Fatal("Failed to create scheduler: %v", err)
	}
	if cfg.Auth.Mode == config.AuthModeSession {
		err = scheduler.RegisterSessionCleanup(
			sessionSvc,
			time.Duration(cfg.Jobs.SessionCleanupMinutes)*time.Minute,
			time.Minute,
		)
		if err != nil {
			log.Fatal("Failed to register session cleanup: %v", err)
		}
		log.Info("Session cleanup scheduled every %dm", cfg.Jobs.SessionCleanupMinutes)
	}
	scheduler.Start()

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r), // preflights are answered before route matching
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

	if err := scheduler.Shutdown(); err != nil {
		log.Error("Scheduler shutdown failed: %v", err)
	}

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

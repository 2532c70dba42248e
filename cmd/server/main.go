package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	_ "sedbms/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"sedbms/internal/auth"
	"sedbms/internal/cache"
	"sedbms/internal/config"
	"sedbms/internal/db"
	"sedbms/internal/handler"
	"sedbms/internal/logger"
	"sedbms/internal/repository"
	"sedbms/internal/router"
	"sedbms/internal/seed"
	"sedbms/internal/service"
)

// @title SE-DBMS API
// @version 1.0
// @description Student records API: students, subjects, marks entry, SGPA/CGPA reports and role based access.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := logger.GetInstance()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := log.Initialize(cfg.LogDir, cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Warn("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Warnf("reset: %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warnf("redis unavailable at %s, running without cache: %v", cfg.Redis.Addr, err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	studentRepo := repository.NewStudentRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)
	markRepo := repository.NewMarkRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	reportRepo, err := repository.NewReportRepository(gormDB, db.SQLDriverName(cfg.Database.Driver))
	if err != nil {
		log.Fatalf("report repository: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(sessionRepo, cacheClient)
	if n, err := sessionRepo.PurgeExpired(ctx); err != nil {
		log.Warnf("purge expired sessions: %v", err)
	} else if n > 0 {
		log.Infof("purged %d expired session revocations", n)
	}

	// Initialize services
	reportService := service.NewReportService(studentRepo, subjectRepo, reportRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	studentService := service.NewStudentService(studentRepo, reportService)
	subjectService := service.NewSubjectService(subjectRepo)
	markService := service.NewMarkService(markRepo, reportRepo, reportService)

	seedRepos := seed.Repos{Users: userRepo, Students: studentRepo, Subjects: subjectRepo, Marks: markRepo, Reports: reportService}
	fixture, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatalf("seed fixture: %v", err)
	}
	if cfg.SeedOnStart {
		res, err := seed.Apply(ctx, seedRepos, fixture)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Infof("seed: %d users, %d students, %d subjects, %d marks created",
			res.Users, res.Students, res.Subjects, res.Marks)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService.TTL())
	studentHandler := handler.NewStudentHandler(studentService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	markHandler := handler.NewMarkHandler(markService)
	reportHandler := handler.NewReportHandler(reportService)
	seedHandler := handler.NewSeedHandler(seedRepos, fixture)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		jwtService,
		authService,
		authHandler,
		studentHandler,
		subjectHandler,
		markHandler,
		reportHandler,
		seedHandler,
	)

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL builds the docs address; host may already carry a scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}

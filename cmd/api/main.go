package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talenthq/payroll-backend-go/internal/config"
	"github.com/talenthq/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/talenthq/payroll-backend-go/internal/handler/http"
	"github.com/talenthq/payroll-backend-go/internal/pkg/cron"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
	"github.com/talenthq/payroll-backend-go/internal/pkg/jwt"
	"github.com/talenthq/payroll-backend-go/internal/pkg/oauth"
	"github.com/talenthq/payroll-backend-go/internal/repository/postgresql"
	auditService "github.com/talenthq/payroll-backend-go/internal/service/audit"
	authService "github.com/talenthq/payroll-backend-go/internal/service/auth"
	companyService "github.com/talenthq/payroll-backend-go/internal/service/company"
	countryService "github.com/talenthq/payroll-backend-go/internal/service/country"
	employeeService "github.com/talenthq/payroll-backend-go/internal/service/employee"
	offerService "github.com/talenthq/payroll-backend-go/internal/service/offer"
	payrollService "github.com/talenthq/payroll-backend-go/internal/service/payroll"
	userService "github.com/talenthq/payroll-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	offerRepo := postgresql.NewOfferRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	countryRegistry := countryService.NewRegistry(fixtures.GetDefaultCountryConfigs())
	auditSink := auditService.NewSink(auditRepo)

	authSvc := authService.NewAuthService(db, userRepo, companyRepo, jwtService, googleService)
	companySvc := companyService.NewCompanyService(companyRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, countryRegistry)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, countryRegistry, auditSink)
	offerSvc := offerService.NewOfferService(offerRepo, countryRegistry, auditSink)
	userSvc := userService.NewUserService(userRepo, auditSink)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:      jwtService,
		AuthHandler:     appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		CompanyHandler:  appHTTP.NewCompanyHandler(companySvc),
		EmployeeHandler: appHTTP.NewEmployeeHandler(employeeSvc),
		PayrollHandler:  appHTTP.NewPayrollHandler(payrollSvc),
		OfferHandler:    appHTTP.NewOfferHandler(offerSvc),
		CountryHandler:  appHTTP.NewCountryHandler(countryRegistry),
		UserHandler:     appHTTP.NewUserHandler(userSvc),
		Env:             cfg.App.Env,
	})

	expiryInterval, err := time.ParseDuration(cfg.App.OfferExpiryInterval)
	if err != nil {
		log.Fatal("Invalid OFFER_EXPIRY_INTERVAL: ", err)
	}
	scheduler := cron.NewScheduler()
	scheduler.AddJob("offer-expiry-sweep", expiryInterval, func(ctx context.Context) error {
		_, err := offerSvc.ExpireOffers(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server starting on port %d\n", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
}

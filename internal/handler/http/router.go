package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/middleware"
	"github.com/talenthq/payroll-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService      jwt.Service
	AuthHandler     AuthHandler
	CompanyHandler  CompanyHandler
	EmployeeHandler EmployeeHandler
	PayrollHandler  PayrollHandler
	OfferHandler    OfferHandler
	CountryHandler  CountryHandler
	UserHandler     UserHandler
	Env             string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talenthq-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				r.Get("/callback/google", deps.AuthHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", deps.UserHandler.Me)
				r.With(middleware.RequireRoles(user.RoleCompanyOwner)).
					Put("/{id}/role", deps.UserHandler.UpdateRole)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/my", deps.CompanyHandler.GetMine)

				// Platform operator only
				r.Group(func(r chi.Router) {
					r.Use(middleware.SuperAdminOnly)
					r.Get("/", deps.CompanyHandler.List)
					r.Post("/", deps.CompanyHandler.Create)
					r.Get("/{id}", deps.CompanyHandler.GetByID)
				})
			})

			r.Route("/countries", func(r chi.Router) {
				r.Get("/", deps.CountryHandler.List)
				r.Get("/{code}", deps.CountryHandler.Get)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.List)
				r.Get("/{id}", deps.EmployeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleCompanyOwner, user.RoleHRAdmin))
					r.Post("/", deps.EmployeeHandler.Create)
					r.Put("/{id}", deps.EmployeeHandler.Update)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", deps.PayrollHandler.Ledger)
				r.Get("/preview", deps.PayrollHandler.Preview)
				r.Get("/results", deps.PayrollHandler.Results)

				r.With(middleware.RequireRoles(user.RoleCompanyOwner, user.RolePayrollAdmin)).
					Post("/run", deps.PayrollHandler.Run)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", deps.OfferHandler.List)
				r.Get("/{id}", deps.OfferHandler.Get)
				r.Get("/{id}/contract", deps.OfferHandler.GetContract)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleCompanyOwner, user.RoleHRAdmin))
					r.Post("/", deps.OfferHandler.Create)
					r.Post("/{id}/send", deps.OfferHandler.Send)
					r.Post("/{id}/accept", deps.OfferHandler.Accept)
					r.Post("/{id}/contract", deps.OfferHandler.GenerateContract)
				})
			})
		})
	})

	return r
}

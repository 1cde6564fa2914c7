package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/labourhub/labour-backend-go/internal/config"
	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/labourhub/labour-backend-go/internal/handler/http/middleware"
	"github.com/labourhub/labour-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	labourHandler LabourHandler,
	attendanceHandler AttendanceHandler,
	advanceHandler AdvanceHandler,
	deductionHandler DeductionHandler,
	leaveHandler LeaveHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "labour-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		authenticated := func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.RequireRole(user.RoleAdmin, user.RoleUser))
		}

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/logout", authHandler.Logout)
				r.Get("/profile", authHandler.GetProfile)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			authenticated(r)

			r.Route("/labours", func(r chi.Router) {
				r.Get("/", labourHandler.List)
				r.Post("/", labourHandler.Create)
				r.Get("/{id}", labourHandler.Get)
				r.Put("/{id}", labourHandler.Update)
				r.Delete("/{id}", labourHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Get("/", attendanceHandler.List)
				r.Get("/labour/{labourId}", attendanceHandler.ListByLabour)
				r.Get("/month/{month}", attendanceHandler.ListByMonth)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", advanceHandler.Create)
				r.Get("/", advanceHandler.List)
				r.Get("/labour/{labourId}", advanceHandler.ListByLabour)
				r.Put("/{id}", advanceHandler.UpdateStatus)
				r.Delete("/{id}", advanceHandler.Delete)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Post("/", deductionHandler.Create)
				r.Get("/", deductionHandler.List)
				r.Get("/labour/{labourId}", deductionHandler.ListByLabour)
				r.Put("/{id}", deductionHandler.Update)
				r.Delete("/{id}", deductionHandler.Delete)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)
				r.Get("/labour/{labourId}", leaveHandler.ListByLabour)
				r.Put("/{id}", leaveHandler.UpdateStatus)
				r.Delete("/{id}", leaveHandler.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Post("/calculate", salaryHandler.Calculate)
				r.Get("/", salaryHandler.List)
				r.Get("/summary", salaryHandler.Summary)
				r.Get("/labour/{labourId}", salaryHandler.ListByLabour)
				r.Get("/month/{month}", salaryHandler.ListByMonth)
				r.Get("/{id}", salaryHandler.Get)

				// Payout changes are admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}", salaryHandler.UpdateStatus)
					r.Delete("/{id}", salaryHandler.Delete)
				})
			})
		})
	})
	return r
}

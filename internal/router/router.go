package router

import (
	"github.com/Alidiabb/quickcounsel/internal/config"
	"github.com/Alidiabb/quickcounsel/internal/handlers"
	"github.com/Alidiabb/quickcounsel/internal/middleware"
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const bodyLimit = 1 * 1024 * 1024

// Services is the set of domain services the routes are served by.
type Services struct {
	Accounts *services.AccountService
	Lawyers  *services.LawyerService
	Reviews  *services.ReviewService
	Cases    *services.CaseService
}

// NewServices builds every service on db.
func NewServices(db *gorm.DB) Services {
	return Services{
		Accounts: services.NewAccountService(db),
		Lawyers:  services.NewLawyerService(db),
		Reviews:  services.NewReviewService(db),
		Cases:    services.NewCaseService(db),
	}
}

// New builds the application with every route registered.
func New(cfg *config.Config, db *gorm.DB, m *metrics.Manager) *fiber.App {
	return NewWithServices(cfg, NewServices(db), m)
}

// NewWithServices is New over an already built service set.
func NewWithServices(cfg *config.Config, svc Services, m *metrics.Manager) *fiber.App {
	authHandler := handlers.NewAuthHandler(svc.Accounts, m)
	lawyersHandler := handlers.NewLawyersHandler(svc.Lawyers, svc.Reviews, m)
	casesHandler := handlers.NewCasesHandler(svc.Cases, m)

	app := fiber.New(fiber.Config{
		AppName:   "quickcounsel",
		BodyLimit: bodyLimit,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics(m))

	app.Get("/health", handlers.Health)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	app.Get("/lawyers", lawyersHandler.Search)
	app.Post("/rate", lawyersHandler.Rate)

	lawyerRoutes := app.Group("/lawyer")
	lawyerRoutes.Get("/profile", lawyersHandler.Profile)
	lawyerRoutes.Put("/description", lawyersHandler.UpdateDescription)
	lawyerRoutes.Post("/cases", casesHandler.Add)
	lawyerRoutes.Get("/cases", casesHandler.List)

	return app
}

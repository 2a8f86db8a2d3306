package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/habitatmx/realestate-api/internal/api/handler"
	"github.com/habitatmx/realestate-api/internal/api/middleware"
	"github.com/habitatmx/realestate-api/internal/auth"
	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers. All of
// it is constructed in main: no package-level state, explicit lifecycles.
type Dependencies struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	Tokens       *auth.TokenService
	Auth         ports.AuthService
	Appointments ports.AppointmentService
	Properties   ports.PropertyService
	Inquiries    ports.InquiryService
	FAQs         ports.FAQService
	LoginLimiter *middleware.LoginLimiter
	Logger       zerolog.Logger
	Production   bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowCredentials: true,
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
	}))
	e.Use(echoprometheus.NewMiddleware("realestate"))

	session := middleware.Session(deps.Tokens, deps.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Production)
	staffHandler := handler.NewStaffHandler(deps.Auth)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	inquiryHandler := handler.NewInquiryHandler(deps.Inquiries)
	faqHandler := handler.NewFAQHandler(deps.FAQs)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	// --- Public site ---
	e.GET("/properties", propertyHandler.ListPublic)
	e.GET("/properties/:id", propertyHandler.Get)
	e.GET("/faqs", faqHandler.List)
	e.POST("/inquiries", inquiryHandler.Submit)
	e.POST("/appointments", appointmentHandler.Book)

	// --- Appointments (management is gated, booking above is not) ---
	e.GET("/appointments", appointmentHandler.List, session)
	e.PATCH("/appointments/:id", appointmentHandler.Transition, session)
	// Legacy front-end path. Kept as an alias but gated like the
	// canonical route: status mutation is never unauthenticated.
	e.PATCH("/appointments/patch/:id", appointmentHandler.Transition, session)
	e.DELETE("/appointments/:id", appointmentHandler.Delete, session)

	// --- Admin ---
	e.POST("/admin/login", authHandler.Login, deps.LoginLimiter.Middleware())
	e.POST("/admin/logout", authHandler.Logout)

	admin := e.Group("/admin", session)
	admin.GET("/dashboard", authHandler.Dashboard)
	admin.PUT("/password", authHandler.ChangePassword)

	admin.GET("/properties", propertyHandler.ListAll)
	admin.POST("/properties", propertyHandler.Create)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)

	admin.GET("/inquiries", inquiryHandler.List)
	admin.DELETE("/inquiries/:id", inquiryHandler.Delete)

	admin.POST("/faqs", faqHandler.Create)
	admin.PUT("/faqs/:id", faqHandler.Update)
	admin.DELETE("/faqs/:id", faqHandler.Delete)

	// Account provisioning requires the admin role, not just a session.
	admin.POST("/staff", staffHandler.Create, adminOnly)
	admin.GET("/staff", staffHandler.List, adminOnly)
	admin.DELETE("/staff/:id", staffHandler.Delete, adminOnly)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
